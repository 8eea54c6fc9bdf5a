package domain

import (
	"context"
	"fmt"
	"log/slog"

	"lfichef.dev/pkg/lfichef/internal/domain/mutators"
	m "lfichef.dev/pkg/lfichef/internal/model"
	"lfichef.dev/pkg/lfichef/pkg"
)

// Pipeline turns raw wordlist lines into the output record stream. The
// record channel closes when the input is exhausted or ctx is cancelled; the
// error channel carries at most one error and closes with the run.
type Pipeline interface {
	Run(ctx context.Context, lines <-chan m.RawPath) (<-chan m.MutationRecord, <-chan error)
}

type pipeline struct {
	mode        m.Mode
	sanitizer   Sanitizer
	expander    mutators.TraversalExpander
	transformer mutators.EncodingTransformer
	injector    mutators.NullByteInjector
}

// NewPipeline builds a pipeline from a validated run configuration. The only
// remaining validation is the drive letter, checked by the sanitizer.
func NewPipeline(cfg m.RunConfig) (Pipeline, error) {
	sanitizer, err := NewSanitizer(cfg.OS, cfg.Drive)
	if err != nil {
		return nil, err
	}

	return &pipeline{
		mode:        cfg.Mode,
		sanitizer:   sanitizer,
		expander:    mutators.NewTraversalExpander(cfg.Traversal),
		transformer: mutators.NewEncodingTransformer(cfg.Encodings, cfg.OS),
		injector:    mutators.NewNullByteInjector(cfg.NullByte),
	}, nil
}

// Run streams records for every input line in input order. Generation is
// pure string composition: once the configuration validated, the only error
// a run can surface is an empty input.
func (p *pipeline) Run(ctx context.Context, lines <-chan m.RawPath) (<-chan m.MutationRecord, <-chan error) {
	records := make(chan m.MutationRecord, 1)
	errCh := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errCh)

		// Sanitize mode dedups across the whole run; generate mode per line.
		runSeen := pkg.NewLineDup()
		consumed := 0

		for raw := range lines {
			if ctx.Err() != nil {
				slog.Debug("mutation streaming cancelled")
				return
			}

			consumed++

			base := p.sanitizer.Sanitize(raw)

			if p.mode == m.ModeSanitize {
				if !runSeen.Add(string(base)) {
					continue
				}

				if !send(ctx, records, m.MutationRecord{Payload: string(base), NullByte: m.NullByteNone}) {
					return
				}

				continue
			}

			if !p.fanOut(ctx, base, records) {
				return
			}
		}

		if consumed == 0 {
			errCh <- fmt.Errorf("%w: no usable lines supplied", m.ErrEmptyInput)
		}

		slog.Debug("mutation streaming finished", "lines", consumed)
	}()

	return records, errCh
}

// fanOut emits the full traversal x encoding x null-byte cross product for
// one sanitized path. Every configured stage keeps the untouched payload as
// its first element, so the plain sanitized path always leads the group and
// each technique is also emitted on its own. Returns false on cancellation.
func (p *pipeline) fanOut(ctx context.Context, base m.CanonicalPath, records chan<- m.MutationRecord) bool {
	lineSeen := pkg.NewLineDup()

	traversals := []mutators.TraversalVariant{{Path: base, Depth: 0}}
	traversals = append(traversals, p.expander.Expand(base)...)

	for _, tv := range traversals {
		encodings := []mutators.EncodedVariant{{Path: tv.Path}}
		encodings = append(encodings, p.transformer.Transform(tv.Path)...)

		for _, ev := range encodings {
			injections := []mutators.NullByteVariant{{Path: ev.Path, Placement: m.NullByteNone}}
			injections = append(injections, p.injector.Inject(ev.Path)...)

			for _, nv := range injections {
				if !lineSeen.Add(string(nv.Path)) {
					continue
				}

				record := m.MutationRecord{
					Payload:   string(nv.Path),
					Depth:     tv.Depth,
					Encodings: ev.Techniques,
					NullByte:  nv.Placement,
				}

				if !send(ctx, records, record) {
					return false
				}
			}
		}
	}

	return true
}

func send(ctx context.Context, records chan<- m.MutationRecord, record m.MutationRecord) bool {
	select {
	case <-ctx.Done():
		return false
	case records <- record:
		return true
	}
}
