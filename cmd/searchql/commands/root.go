// Package commands implements the searchql CLI commands.
package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/searchql/validator/internal/config"
	"github.com/searchql/validator/pkg/logger"
)

var (
	flagConfig  string
	flagOutput  string
	flagNoColor bool
	flagVerbose bool

	cfg = &config.Config{Output: config.OutputText, Color: true}
)

var rootCmd = &cobra.Command{
	Use:   "searchql",
	Short: "Validate and inspect search-query documents",
	Long: `searchql validates documents written in the search-query language
(qualifier:value pairs, variables, ranges, dates, sort directives,
boolean OR) and reports every semantic finding.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		config.Init()
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded

		// Flags win over file and environment settings.
		if cmd.Flags().Changed("output") {
			cfg.Output = flagOutput
		}
		if flagNoColor {
			cfg.Color = false
		}
		if flagVerbose {
			cfg.Verbose = true
		}
		if !config.ValidOutput(cfg.Output) {
			return errors.Newf("unsupported output format %q", cfg.Output)
		}
		if cfg.Verbose {
			logger.Default().SetLevel(logger.LevelDebug)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", config.OutputText, "output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errLintFailed) {
			logger.Error("%v", err)
		}
		return err
	}
	return nil
}

// readInput reads a named file, or stdin when name is "-".
func readInput(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return string(data), nil
}
