// Package cmd provides the root command and CLI setup for lfichef.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"lfichef.dev/pkg/lfichef/internal/adapter"
	"lfichef.dev/pkg/lfichef/internal/controller"
	"lfichef.dev/pkg/lfichef/internal/domain"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

var wordlistAdapter adapter.WordlistAdapter
var reportStore adapter.ReportStore

// outFileFlag is a root-level flag shared by the generate and sanitize commands.
var outFileFlag string

// reportFlag names an optional YAML run-report destination.
var reportFlag string

// quietFlag forces plain output even on interactive terminals.
var quietFlag bool

// verboseFlag raises the log level to Debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	wordlistAdapter = adapter.NewLocalWordlistAdapter()
	reportStore = adapter.NewReportStore()
}

const osArgHelp = `The target OS argument selects the payload conventions:
  mac, linux    forward slashes, no drive letters
  windows       backslashes, optional drive letter handling`

const rootLongDescription = `lfichef automates LFI wordlist preparation: it sanitizes raw path
wordlists into per-OS canonical form and generates evasion mutations
(encodings, directory traversal prefixes, null-byte injections) from them.

` + osArgHelp

const generateLongDescription = `Expand each sanitized path into the cross product of the enabled evasion
techniques and write the result as a new wordlist.

` + osArgHelp

const sanitizeLongDescription = `Normalize every path in the wordlist to the target OS's separator and
drive-letter conventions, suppressing duplicate results.

` + osArgHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lfichef",
		Short: "LFI wordlist generation tool with integrated evasion techniques",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outFileFlag, outFileFlagName, "o",
			viper.GetString(outFileConfigKey),
			"path of the output wordlist (default: timestamped file in the working directory)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outFileFlagName), outFileConfigKey)

	cmd.PersistentFlags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportConfigKey), "write a YAML run report to the given path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().BoolVarP(&quietFlag, quietFlagName, "q", false, "plain output, no interactive progress display")
	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runWorkflow assembles the UI and workflow for one validated configuration.
func runWorkflow(cmd *cobra.Command, cfg m.RunConfig) error {
	interactive := controller.IsTTY(os.Stdout) && !quietFlag
	ui := controller.NewUI(cmd, interactive)

	workflow := domain.NewWorkflow(wordlistAdapter, reportStore, ui)

	return workflow.Run(cmd.Context(), domain.RunArgs{
		Config:     cfg,
		ReportPath: m.Path(viper.GetString(reportConfigKey)),
	})
}

// resolveOutFile applies the default timestamped path when no output was given.
func resolveOutFile(targetOS m.TargetOS) m.Path {
	if out := viper.GetString(outFileConfigKey); out != "" {
		return m.Path(out)
	}

	return wordlistAdapter.DefaultOutFile(targetOS, time.Now())
}
