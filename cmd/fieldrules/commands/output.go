package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/michaelolof/fieldrules/internal/config"
	"github.com/michaelolof/fieldrules/schema"
)

func writeResult(w io.Writer, output string, res schema.Result) error {
	if output == config.OutputJSON {
		return writeJSON(w, res)
	}

	if res.Valid {
		fmt.Fprintln(w, color.GreenString("✓ valid"))
		return nil
	}
	fmt.Fprintln(w, color.RedString("✗ %s", res.Error))
	return nil
}

// lintIssue is one field whose rules do not compile.
type lintIssue struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type lintReport struct {
	Path   string      `json:"path"`
	Fields int         `json:"fields"`
	Issues []lintIssue `json:"issues,omitempty"`
}

func writeLintReport(w io.Writer, output string, report lintReport) error {
	if output == config.OutputJSON {
		return writeJSON(w, report)
	}

	if len(report.Issues) == 0 {
		fmt.Fprintln(w, color.GreenString("✓ %s: %d field(s) OK", report.Path, report.Fields))
		return nil
	}

	fmt.Fprintf(w, "%s\n\n", color.RedString("✗ %s: %d of %d field(s) have errors", report.Path, len(report.Issues), report.Fields))
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "  %s: %s\n", color.CyanString(issue.Field), issue.Error)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON")
}
