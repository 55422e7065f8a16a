// Package pipeline orchestrates the dictionary processing phases:
// normalize (including collision resolution), rank, finalize, verify.
// Each phase reads its input CSV whole, transforms it in memory, and writes
// its output CSV whole; re-running any phase is idempotent.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/undefine/dictionary-pipeline/internal/app/pipeline/etymology"
	"github.com/undefine/dictionary-pipeline/internal/app/pipeline/normalizer"
	"github.com/undefine/dictionary-pipeline/internal/app/pipeline/ranker"
	"github.com/undefine/dictionary-pipeline/internal/app/pipeline/resolver"
	"github.com/undefine/dictionary-pipeline/internal/app/pipeline/verifier"
	"github.com/undefine/dictionary-pipeline/internal/config"
	"github.com/undefine/dictionary-pipeline/internal/csvio"
	"github.com/undefine/dictionary-pipeline/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"normalize", "rank", "finalize", "verify"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Read       int
	Written    int
	Dropped    int
	Collisions int
	Violations int
	Duration   time.Duration
	Err        error
}

// Pipeline runs the processing phases in order over the configured CSV paths.
type Pipeline struct {
	log     *slog.Logger
	cfg     config.PipelineConfig
	runID   uuid.UUID
	results map[string]PhaseResult
}

// New creates a Pipeline with a fresh run ID.
func New(log *slog.Logger, cfg config.PipelineConfig) *Pipeline {
	runID := uuid.New()
	return &Pipeline{
		log:     log.With(slog.String("run_id", runID.String())),
		cfg:     cfg,
		runID:   runID,
		results: make(map[string]PhaseResult),
	}
}

// RunID returns the identifier of this pipeline run.
func (p *Pipeline) RunID() uuid.UUID {
	return p.runID
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded an error.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the phases in canonical order. If phases is non-empty, only
// the listed phases run. A failed phase stops the run: later phases would
// read the output it did not produce.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline interrupted: %w", err)
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "normalize":
			result = p.runNormalize()
		case "rank":
			result = p.runRank()
		case "finalize":
			result = p.runFinalize()
		case "verify":
			result = p.runVerify()
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Error("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("read", result.Read),
			slog.Int("written", result.Written),
			slog.Int("dropped", result.Dropped),
			slog.Int("collisions", result.Collisions),
			slog.Int("violations", result.Violations),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runNormalize reads the raw CSV, normalizes headwords, resolves collisions,
// and writes the normalized CSV plus the collision report.
func (p *Pipeline) runNormalize() PhaseResult {
	raws, err := csvio.ReadRawEntries(p.cfg.RawCSV)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read raw entries: %w", err)}
	}
	if len(raws) == 0 {
		return PhaseResult{Err: fmt.Errorf("raw input %s: %w", p.cfg.RawCSV, domain.ErrEmptyDataset)}
	}

	entries, stats := normalizer.Normalize(raws)
	kept, collisions := resolver.Resolve(entries, p.cfg.Dedupe)

	p.log.Info("normalized",
		slog.Int("input", stats.Input),
		slog.Int("dropped_empty", stats.DroppedEmpty),
		slog.Int("dropped_non_alpha", stats.DroppedNonAlpha),
		slog.Bool("dedupe", p.cfg.Dedupe),
		slog.Int("kept", len(kept)),
	)

	result := PhaseResult{
		Read:       len(raws),
		Written:    len(kept),
		Dropped:    stats.DroppedEmpty + stats.DroppedNonAlpha,
		Collisions: len(collisions),
	}

	if p.cfg.DryRun {
		return result
	}

	if len(collisions) > 0 {
		if err := csvio.WriteCollisionRecords(p.cfg.CollisionsCSV, collisions); err != nil {
			return PhaseResult{Err: fmt.Errorf("write collision report: %w", err)}
		}
	}
	if err := csvio.WriteNormalizedEntries(p.cfg.NormalizedCSV, kept); err != nil {
		return PhaseResult{Err: fmt.Errorf("write normalized entries: %w", err)}
	}
	return result
}

// runRank reads the normalized CSV, assigns ranks, and writes the ranked CSV.
func (p *Pipeline) runRank() PhaseResult {
	entries, err := csvio.ReadNormalizedEntries(p.cfg.NormalizedCSV)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read normalized entries: %w", err)}
	}
	if len(entries) == 0 {
		return PhaseResult{Err: fmt.Errorf("normalized input %s: %w", p.cfg.NormalizedCSV, domain.ErrEmptyDataset)}
	}

	ranked := ranker.Assign(entries)

	result := PhaseResult{Read: len(entries), Written: len(ranked)}
	if p.cfg.DryRun {
		return result
	}
	if err := csvio.WriteRankedEntries(p.cfg.RankedCSV, ranked); err != nil {
		return PhaseResult{Err: fmt.Errorf("write ranked entries: %w", err)}
	}
	return result
}

// runFinalize reads the ranked CSV, applies the optional etymology overlay,
// and writes the final downstream import CSV.
func (p *Pipeline) runFinalize() PhaseResult {
	ranked, err := csvio.ReadRankedEntries(p.cfg.RankedCSV)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read ranked entries: %w", err)}
	}
	if len(ranked) == 0 {
		return PhaseResult{Err: fmt.Errorf("ranked input %s: %w", p.cfg.RankedCSV, domain.ErrEmptyDataset)}
	}

	if p.cfg.EtymologyCSV != "" {
		overlay, err := csvio.ReadEtymologyOverlay(p.cfg.EtymologyCSV)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("read etymology overlay: %w", err)}
		}
		var applied int
		ranked, applied = etymology.Apply(ranked, overlay)
		p.log.Info("etymology overlay applied",
			slog.Int("overlay_words", len(overlay)),
			slog.Int("filled", applied),
		)
	}

	result := PhaseResult{Read: len(ranked), Written: len(ranked)}
	if p.cfg.DryRun {
		return result
	}
	if err := csvio.WriteFinalEntries(p.cfg.FinalCSV, ranked); err != nil {
		return PhaseResult{Err: fmt.Errorf("write final entries: %w", err)}
	}
	return result
}

// runVerify re-reads the ranked CSV and checks every structural invariant.
// The verifier itself always completes its pass; a non-empty violation list
// surfaces as ErrVerificationFailed on the phase.
func (p *Pipeline) runVerify() PhaseResult {
	ranked, err := csvio.ReadRankedEntries(p.cfg.RankedCSV)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("read ranked entries: %w", err)}
	}
	if len(ranked) == 0 {
		return PhaseResult{Err: fmt.Errorf("ranked input %s: %w", p.cfg.RankedCSV, domain.ErrEmptyDataset)}
	}

	report := verifier.Verify(ranked)
	result := PhaseResult{Read: len(ranked), Violations: len(report.Violations)}

	if report.OK() {
		p.log.Info("verification passed", slog.Int("rows", report.Rows))
		return result
	}

	for _, v := range report.Render(p.cfg.ReportLimit) {
		p.log.Error("invariant violation", slog.String("violation", v))
	}
	result.Err = fmt.Errorf("%d violation(s): %w", len(report.Violations), domain.ErrVerificationFailed)
	return result
}

// IsEmptyDataset reports whether err is (or wraps) the empty-input failure,
// which commands map to a distinct exit code.
func IsEmptyDataset(err error) bool {
	return errors.Is(err, domain.ErrEmptyDataset)
}
