// Command pipeline turns a raw extracted dictionary CSV into the canonical,
// deduplicated, ranked dataset used by the word-game lookup table. It runs
// the phases normalize → rank → finalize → verify over the configured CSV
// paths. Extraction from source markup, etymology fetching, and upload are
// separate tools; this command only consumes and produces local CSV files.
//
// Flags:
//
//	--phase     comma-separated list of phases to run (default: all)
//	--dedupe    override collision deduplication (true/false)
//	--dry-run   run phases without writing output files
//	--config    path to YAML config file
//
// Exit codes: 0 = success, 1 = error or invariant violations, 2 = empty input.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/undefine/dictionary-pipeline/internal/app"
	"github.com/undefine/dictionary-pipeline/internal/app/pipeline"
	"github.com/undefine/dictionary-pipeline/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dedupeFlag := flag.String("dedupe", "", "override dedupe setting (true/false)")
	dryRunFlag := flag.Bool("dry-run", false, "run phases without writing output files")
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("dictionary pipeline", slog.String("version", app.BuildVersion()))

	// CLI flags override config.
	if *dryRunFlag {
		cfg.Pipeline.DryRun = true
	}
	if *dedupeFlag != "" {
		cfg.Pipeline.Dedupe = strings.EqualFold(*dedupeFlag, "true")
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := pipeline.New(logger, cfg.Pipeline)
	if err := p.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		if pipeline.IsEmptyDataset(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
