package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces the run.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := applyStartOptions(options)

	switch cfg.config.Mode {
	case m.ModeGenerate:
		s.printf("[+] Generating %s mutation wordlist from %s\n", cfg.config.OS, cfg.config.InFile)
	case m.ModeSanitize:
		s.printf("[+] Sanitizing the input wordlist %s\n", cfg.config.InFile)
	}

	return nil
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayProgress is a no-op; the simple UI only prints start and summary.
func (s *SimpleUI) DisplayProgress(ctx context.Context, _ int) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplaySummary prints the run summary table and the output location.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n", renderSummaryTable(report))
	s.printf("Wordlist written to %s (%s)\n", report.OutFile, report.Duration)

	return nil
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Stage", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Lines read", fmt.Sprintf("%d", report.LinesRead)})
	table.Append([]string{"Traversal variants", fmt.Sprintf("%d", report.TraversalVariants)})
	table.Append([]string{"Encoding variants", fmt.Sprintf("%d", report.EncodingVariants)})
	table.Append([]string{"Null-byte variants", fmt.Sprintf("%d", report.NullByteVariants)})
	table.SetFooter([]string{"Lines written", fmt.Sprintf("%d", report.LinesWritten)})

	table.Render()

	return tableBuffer.String()
}

func applyStartOptions(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
