package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"lfichef.dev/pkg/lfichef/internal/adapter"
	"lfichef.dev/pkg/lfichef/internal/controller"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

// progressInterval is how many produced records pass between UI updates.
const progressInterval = 1000

// RunArgs carries everything a single run needs.
type RunArgs struct {
	Config m.RunConfig
	// ReportPath, when non-empty, is where the YAML run report is saved.
	ReportPath m.Path
}

// Workflow executes one sanitize or generate run end to end.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
}

type workflow struct {
	adapter.WordlistAdapter
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(wordlist adapter.WordlistAdapter, reports adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		WordlistAdapter: wordlist,
		ReportStore:     reports,
		UI:              ui,
	}
}

// Run wires reader -> pipeline -> writer as concurrent stages. Generation
// itself stays sequential, so output order is deterministic; the goroutines
// only decouple file IO from the core.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	cfg := args.Config

	pipeline, err := NewPipeline(cfg)
	if err != nil {
		return err
	}

	report := m.RunReport{
		Mode:      string(cfg.Mode),
		OS:        string(cfg.OS),
		InFile:    string(cfg.InFile),
		OutFile:   string(cfg.OutFile),
		StartedAt: time.Now(),
	}

	if err := w.UI.Start(ctx, controller.WithRunConfig(cfg)); err != nil {
		return err
	}
	defer w.UI.Close(ctx)

	group, gctx := errgroup.WithContext(ctx)

	lines, readErrs := w.StreamLines(gctx, cfg.InFile)

	counted := make(chan m.RawPath, 1)

	group.Go(func() error {
		defer close(counted)

		for line := range lines {
			report.LinesRead++

			select {
			case <-gctx.Done():
				return gctx.Err()
			case counted <- line:
			}
		}

		return nil
	})

	records, genErrs := pipeline.Run(gctx, counted)

	out := make(chan string, progressInterval)

	group.Go(func() error {
		defer close(out)

		produced := 0

		for record := range records {
			produced++
			tally(&report, record)

			if produced%progressInterval == 0 {
				w.UI.DisplayProgress(gctx, produced)
			}

			select {
			case <-gctx.Done():
				return gctx.Err()
			case out <- record.Payload:
			}
		}

		w.UI.DisplayProgress(gctx, produced)

		return nil
	})

	group.Go(func() error {
		written, err := w.WriteLines(gctx, cfg.OutFile, out)
		report.LinesWritten = written

		return err
	})

	group.Go(func() error {
		return w.drainErrors(cfg, readErrs, genErrs)
	})

	if err := group.Wait(); err != nil {
		slog.Error("run failed", "mode", cfg.Mode, "in_file", cfg.InFile, "error", err)
		return err
	}

	report.Duration = time.Since(report.StartedAt).Round(time.Millisecond).String()

	slog.Info("run complete",
		"mode", cfg.Mode,
		"os", cfg.OS,
		"lines_read", report.LinesRead,
		"lines_written", report.LinesWritten,
	)

	if err := w.UI.DisplaySummary(ctx, report); err != nil {
		return err
	}

	if args.ReportPath != "" {
		if err := w.ReportStore.Save(args.ReportPath, report); err != nil {
			return err
		}
	}

	return nil
}

// drainErrors consumes both error channels to completion and reports the
// first failure.
func (w *workflow) drainErrors(cfg m.RunConfig, readErrs, genErrs <-chan error) error {
	var firstErr error

	for err := range readErrs {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for err := range genErrs {
		if err != nil && firstErr == nil {
			if errors.Is(err, m.ErrEmptyInput) {
				err = fmt.Errorf("%s: %w", cfg.InFile, err)
			}

			firstErr = err
		}
	}

	return firstErr
}

func tally(report *m.RunReport, record m.MutationRecord) {
	if record.Depth > 0 {
		report.TraversalVariants++
	}

	if record.Encodings != "" {
		report.EncodingVariants++
	}

	if record.NullByte == m.NullBytePrepend || record.NullByte == m.NullByteAppend {
		report.NullByteVariants++
	}
}
