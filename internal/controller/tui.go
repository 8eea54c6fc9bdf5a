package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	closed  bool
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := applyStartOptions(options)

	t.program = tea.NewProgram(newRunModel(cfg.config), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the program and waits for its final frame.
func (t *TUI) Close(ctx context.Context) {
	if t.program == nil || t.closed {
		return
	}

	t.closed = true
	t.program.Quit()
	<-t.done

	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayProgress updates the live counter.
func (t *TUI) DisplayProgress(ctx context.Context, produced int) {
	if t.program == nil || ctx.Err() != nil {
		return
	}

	t.program.Send(progressMsg(produced))
}

// DisplaySummary hands the final report to the model and lets the program
// render it as its last frame.
func (t *TUI) DisplaySummary(ctx context.Context, report m.RunReport) error {
	if t.program == nil {
		return ctx.Err()
	}

	t.program.Send(summaryMsg{report: report})
	<-t.done
	t.closed = true

	return ctx.Err()
}

type progressMsg int

type summaryMsg struct {
	report m.RunReport
}

// runModel is the Bubble Tea model for a running generation.
type runModel struct {
	spinner  spinner.Model
	config   m.RunConfig
	produced int
	report   *m.RunReport
	quitting bool
}

func newRunModel(cfg m.RunConfig) runModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = counterStyle

	return runModel{
		spinner: sp,
		config:  cfg,
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		rm.produced = int(msg)
		return rm, nil

	case summaryMsg:
		report := msg.report
		rm.report = &report
		rm.quitting = true

		return rm, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			rm.quitting = true
			return rm, tea.Quit
		}

		return rm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	}

	return rm, nil
}

func (rm runModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("lfichef · %s · %s", rm.config.Mode, rm.config.OS)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if rm.report != nil {
		rm.renderSummary(&b)
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s %s\n",
		rm.spinner.View(),
		labelStyle.Render("cooking payloads from"),
		string(rm.config.InFile),
	)
	fmt.Fprintf(&b, "  %s\n", counterStyle.Render(fmt.Sprintf("%d lines produced", rm.produced)))

	return b.String()
}

func (rm runModel) renderSummary(b *strings.Builder) {
	report := *rm.report

	rows := []struct {
		label string
		value int
	}{
		{"lines read", report.LinesRead},
		{"traversal variants", report.TraversalVariants},
		{"encoding variants", report.EncodingVariants},
		{"null-byte variants", report.NullByteVariants},
		{"lines written", report.LinesWritten},
	}

	for _, row := range rows {
		fmt.Fprintf(b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-20s", row.label)),
			counterStyle.Render(fmt.Sprintf("%d", row.value)),
		)
	}

	fmt.Fprintf(b, "  %s %s (%s)\n",
		labelStyle.Render(fmt.Sprintf("%-20s", "written to")),
		report.OutFile,
		report.Duration,
	)
}
