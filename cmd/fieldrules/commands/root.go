// Package commands implements the CLI commands for fieldrules.
package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/michaelolof/fieldrules/internal/config"
	"github.com/michaelolof/fieldrules/internal/logging"
	"github.com/michaelolof/fieldrules/schema"
)

const version = "0.1.0"

var (
	// verbosity holds the count of -v flags.
	verbosity int

	// configPath holds the value of the --config flag.
	configPath string

	noColor bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./fieldrules.yaml or $XDG_CONFIG_HOME/fieldrules/fieldrules.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("fieldrules version {{.Version}}\n")

	// Silence errors and usage so main controls error output and exit codes
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "fieldrules",
	Short: "Validate form field values against declarative rules",
	Long: `fieldrules checks a single form field value against a list of named rules
such as required, email or min:8, and prints the message of the first rule
that fails.

Rules come from repeated --rule flags or from a rules file (JSON, YAML or
TOML) that maps field names to their rules.`,
	Example: `  # Check a value against inline rules
  fieldrules check -r required -r min:8 -r mixedCase 'hunter2'

  # Check a field described in a rules file
  fieldrules check --rules signup.yaml --field email 'me@example.com'

  # Find unknown rules and bad parameters in a rules file
  fieldrules lint --rules signup.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(config.New(), configPath)
		if err != nil {
			return NewExitError(err, ExitConfig)
		}
		cfg = loaded

		if noColor || !cfg.Color {
			color.NoColor = true
		}
		logging.Setup(verbosity, cmd.ErrOrStderr(), color.NoColor)
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newEngine() (*schema.Engine, error) {
	return schema.New(schema.WithLogger(logging.GetLogger("engine")))
}

// outputFormat resolves --json against the configured default.
func outputFormat(jsonFlag bool) string {
	if jsonFlag {
		return config.OutputJSON
	}
	if cfg != nil {
		return cfg.Output
	}
	return config.OutputText
}
