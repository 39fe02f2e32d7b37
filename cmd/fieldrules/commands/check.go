package commands

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/michaelolof/fieldrules/cont"
	"github.com/michaelolof/fieldrules/internal/logging"
	"github.com/michaelolof/fieldrules/schema"
)

var (
	checkRules     []string
	checkRulesFile string
	checkField     string
	checkJSON      bool
)

func init() {
	// StringArray, not StringSlice: "in:a,b" must not be split on commas.
	checkCmd.Flags().StringArrayVarP(&checkRules, "rule", "r", nil,
		"rule identifier, e.g. required or min:8 (repeatable)")
	checkCmd.Flags().StringVarP(&checkRulesFile, "rules", "f", "",
		"rules file (json, yaml or toml); defaults to rules_file from the config")
	checkCmd.Flags().StringVar(&checkField, "field", "",
		"field of the rules file to check the value against")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"output the result as JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <value>",
	Short: "Check a value against a set of rules",
	Long: `Check a single value against a rule set and print the message of the first
failing rule.

A blank value passes unless the rules include required.

Exit codes:
  0 - Value is valid
  1 - Value is invalid
  2 - Unknown rule, bad rule parameter, bad rules file or bad usage`,
	Example: `  fieldrules check -r required -r email 'me@example.com'
  fieldrules check -r 'in:red,green,blue' green
  fieldrules check -r 'match:Password|s3cret' s3cret
  fieldrules check --rules signup.json --field password --json 'hunter2'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		opts := checkOptions{
			rules:     checkRules,
			rulesFile: checkRulesFile,
			field:     checkField,
			output:    outputFormat(checkJSON),
		}
		if opts.rulesFile == "" && cfg != nil {
			opts.rulesFile = cfg.RulesFile
		}
		return runCheck(os.Stdout, engine, opts, args[0])
	},
}

type checkOptions struct {
	rules     []string
	rulesFile string
	field     string
	output    string
}

func runCheck(w io.Writer, engine *schema.Engine, opts checkOptions, val string) error {
	set, err := opts.ruleSet()
	if err != nil {
		return err
	}

	log := logging.GetLogger("check")
	log.Info().Str("rules", set.String()).Msg("checking value")

	res, err := engine.EvaluateRuleSet(val, set)
	if err != nil {
		return err
	}

	if err := writeResult(w, opts.output, res); err != nil {
		return err
	}
	if !res.Valid {
		return errInvalidValue
	}
	return nil
}

// ruleSet picks inline --rule flags first, then the field of the rules file.
func (o checkOptions) ruleSet() (schema.RuleSet, error) {
	if len(o.rules) > 0 {
		return schema.List(o.rules...), nil
	}

	if o.rulesFile == "" {
		return schema.RuleSet{}, NewExitError(
			errors.WithHint(errors.New("no rules given"), "pass --rule, or --rules with --field"),
			ExitConfig,
		)
	}
	if o.field == "" {
		return schema.RuleSet{}, NewExitError(errors.New("--field is required with a rules file"), ExitConfig)
	}

	doc, err := cont.Load(o.rulesFile)
	if err != nil {
		return schema.RuleSet{}, err
	}

	set, ok := doc.Get(o.field)
	if !ok {
		return schema.RuleSet{}, NewExitError(
			errors.WithHintf(errors.Newf("field %q not found in %s", o.field, o.rulesFile),
				"fields: %s", strings.Join(doc.Names(), ", ")),
			ExitConfig,
		)
	}
	return set, nil
}
