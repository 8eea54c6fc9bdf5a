// Package controller provides output adapters for displaying run progress
// and results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	config m.RunConfig
}

// WithRunConfig tells the UI which run it is displaying.
func WithRunConfig(cfg m.RunConfig) StartOption {
	return func(c *StartConfig) {
		c.config = cfg
	}
}

// UI defines the interface for displaying a run. Implementations can use
// different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	// DisplayProgress reports the number of records produced so far.
	DisplayProgress(ctx context.Context, produced int)
	// DisplaySummary renders the final run report.
	DisplaySummary(ctx context.Context, report m.RunReport) error
}

// NewUI selects the UI implementation: the Bubble Tea TUI on interactive
// terminals, plain command output otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
