package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

var sanitizeDriveFlag string

// sanitizeCmd represents the sanitize command.
var sanitizeCmd = newSanitizeCmd()

func newSanitizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sanitize <os> <wordlist>",
		Short: "Sanitize a wordlist for a target OS",
		Long:  sanitizeLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildSanitizeConfig(args[0], args[1])
			if err != nil {
				return err
			}

			return runWorkflow(cmd, cfg)
		},
	}

	configureSanitizeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)
}

func configureSanitizeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sanitizeDriveFlag, driveFlagName, "d", viper.GetString(driveConfigKey),
		"Windows drive letter (A-Z) prepended to paths without one; when omitted, existing drive letters are stripped")
	bindFlagToConfig(cmd.Flags().Lookup(driveFlagName), driveConfigKey)
}

func buildSanitizeConfig(osArg, inFile string) (m.RunConfig, error) {
	targetOS, err := m.ParseTargetOS(osArg)
	if err != nil {
		return m.RunConfig{}, err
	}

	// The drive letter itself is validated when the sanitizer is built,
	// before the output file is opened.
	return m.RunConfig{
		Mode:    m.ModeSanitize,
		OS:      targetOS,
		InFile:  m.Path(inFile),
		OutFile: resolveOutFile(targetOS),
		Drive:   viper.GetString(driveConfigKey),
	}, nil
}
