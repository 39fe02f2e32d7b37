package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/michaelolof/fieldrules/cont"
	"github.com/michaelolof/fieldrules/schema"
)

var (
	lintRulesFile string
	lintJSON      bool
)

func init() {
	lintCmd.Flags().StringVarP(&lintRulesFile, "rules", "f", "",
		"rules file to lint; defaults to rules_file from the config")
	lintCmd.Flags().BoolVar(&lintJSON, "json", false,
		"output the report as JSON")
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report unknown rules and bad parameters in a rules file",
	Long: `Resolve every rule of every field in a rules file without validating any
value. Unlike check, lint also reports rules that a blank optional value
would never reach.

Exit codes:
  0 - Every field compiles
  2 - The file is malformed or a field has errors`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		path := lintRulesFile
		if path == "" && cfg != nil {
			path = cfg.RulesFile
		}
		if path == "" {
			return NewExitError(errors.New("no rules file given"), ExitConfig)
		}
		return runLint(os.Stdout, engine, path, outputFormat(lintJSON))
	},
}

func runLint(w io.Writer, engine *schema.Engine, path, output string) error {
	doc, err := cont.Load(path)
	if err != nil {
		return err
	}

	report := lintReport{Path: path, Fields: len(doc.Fields())}
	for _, f := range doc.Fields() {
		if err := engine.Check(f.Rules); err != nil {
			report.Issues = append(report.Issues, lintIssue{Field: f.Name, Error: err.Error()})
		}
	}

	if err := writeLintReport(w, output, report); err != nil {
		return err
	}
	if len(report.Issues) > 0 {
		return errLintFailed
	}
	return nil
}
