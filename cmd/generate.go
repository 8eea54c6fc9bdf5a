package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"lfichef.dev/pkg/lfichef/internal/domain/mutators"
	m "lfichef.dev/pkg/lfichef/internal/model"
)

var generateEncodingFlag string
var generateTraversalFlag string
var generateTraversalCharsFlag string
var generateNullByteFlag string

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <os> <wordlist>",
		Short: "Generate an evasion mutation wordlist",
		Long:  generateLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildGenerateConfig(args[0], args[1])
			if err != nil {
				return err
			}

			return runWorkflow(cmd, cfg)
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateEncodingFlag, encodingFlagName, "e", viper.GetString(encodingConfigKey),
		"encoding techniques to combine: u (url), d (double url), b (16-bit unicode), o (overlong utf-8); e.g. udbo, duo, ou")
	bindFlagToConfig(cmd.Flags().Lookup(encodingFlagName), encodingConfigKey)

	cmd.Flags().StringVarP(&generateTraversalFlag, traversalFlagName, "t", viper.GetString(traversalConfigKey),
		"traversal recursion depth, a single number or an inclusive range like 2:4")
	bindFlagToConfig(cmd.Flags().Lookup(traversalFlagName), traversalConfigKey)

	cmd.Flags().StringVar(&generateTraversalCharsFlag, traversalCharsFlagName, viper.GetString(traversalCharsConfigKey),
		"custom traversal token pairs, comma separated with a colon between traversal and separator, e.g. ../:/,....//://")
	bindFlagToConfig(cmd.Flags().Lookup(traversalCharsFlagName), traversalCharsConfigKey)

	cmd.Flags().StringVarP(&generateNullByteFlag, nullByteFlagName, "n", viper.GetString(nullByteConfigKey),
		"null byte injection mode: p (prepend), a (append), b (both)")
	bindFlagToConfig(cmd.Flags().Lookup(nullByteFlagName), nullByteConfigKey)
}

// buildGenerateConfig validates every generate option up front; nothing is
// written before this succeeds.
func buildGenerateConfig(osArg, inFile string) (m.RunConfig, error) {
	targetOS, err := m.ParseTargetOS(osArg)
	if err != nil {
		return m.RunConfig{}, err
	}

	encodings, err := mutators.ParseEncodingSet(viper.GetString(encodingConfigKey))
	if err != nil {
		return m.RunConfig{}, err
	}

	traversal, err := mutators.ParseTraversalSpec(
		viper.GetString(traversalConfigKey),
		viper.GetString(traversalCharsConfigKey),
		targetOS,
	)
	if err != nil {
		return m.RunConfig{}, err
	}

	nullByte, err := mutators.ParseNullByteMode(viper.GetString(nullByteConfigKey))
	if err != nil {
		return m.RunConfig{}, err
	}

	return m.RunConfig{
		Mode:      m.ModeGenerate,
		OS:        targetOS,
		InFile:    m.Path(inFile),
		OutFile:   resolveOutFile(targetOS),
		Traversal: traversal,
		Encodings: encodings,
		NullByte:  nullByte,
	}, nil
}
