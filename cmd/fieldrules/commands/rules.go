package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/michaelolof/fieldrules/internal/config"
	"github.com/michaelolof/fieldrules/validators"
)

var rulesJSON bool

func init() {
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false,
		"output the rule list as JSON")
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available rules",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		return runRules(os.Stdout, engine.Registry(), outputFormat(rulesJSON))
	},
}

type ruleInfo struct {
	Name    string `json:"name"`
	Param   string `json:"param"`
	Message string `json:"message"`
}

func runRules(w io.Writer, reg *validators.Registry, output string) error {
	infos := make([]ruleInfo, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		v, err := reg.Lookup(name)
		if err != nil {
			return err
		}

		param := ""
		if v.Param != validators.NoParam {
			param = "{" + v.Param.String() + "}"
		}
		infos = append(infos, ruleInfo{
			Name:    name,
			Param:   v.Param.String(),
			Message: v.DefaultMessage(param),
		})
	}

	if output == config.OutputJSON {
		return writeJSON(w, infos)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPARAM\tDEFAULT MESSAGE")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", color.GreenString(info.Name), info.Param, info.Message)
	}
	return tw.Flush()
}
