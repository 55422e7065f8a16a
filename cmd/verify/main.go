// Command verify re-reads a ranked dictionary CSV and checks every
// structural invariant the pipeline is supposed to guarantee: canonical
// keys, derived fields, dense 1-based ranks, and non-decreasing key order.
// It never writes anything. Violations go to stderr, bounded by --limit.
//
// Exit codes: 0 = pass, 1 = violations found, 2 = empty or unreadable input.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/undefine/dictionary-pipeline/internal/app/pipeline/verifier"
	"github.com/undefine/dictionary-pipeline/internal/csvio"
)

func main() {
	inputFlag := flag.String("input", "output/dictionary_ranked.csv", "ranked CSV to validate")
	limitFlag := flag.Int("limit", verifier.DefaultReportLimit, "max violations to print")
	flag.Parse()

	entries, err := csvio.ReadRankedEntries(*inputFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify: %v\n", err)
		os.Exit(2)
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "verify: no rows found")
		os.Exit(2)
	}

	report := verifier.Verify(entries)
	if !report.OK() {
		fmt.Fprintln(os.Stderr, "verify: FAILED:")
		for _, v := range report.Render(*limitFlag) {
			fmt.Fprintf(os.Stderr, "- %s\n", v)
		}
		os.Exit(1)
	}

	fmt.Printf("verify: OK (%d rows)\n", report.Rows)
}
