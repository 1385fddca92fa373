package commands

import (
	"github.com/spf13/cobra"

	"github.com/binsight/binsight/errors"
	"github.com/binsight/binsight/report"
)

var syntaxOutput string

// SyntaxCmd represents the syntax command
var SyntaxCmd = &cobra.Command{
	Use:   "syntax <ref-path> <impl-path>",
	Short: "Compare rendered declarations between two snapshots",
	Long: `Match APIs between two independently built snapshots by canonical
signature and report every pair whose rendered declaration text differs.
APIs present on only one side, and pairs whose declarations are
byte-identical, are omitted.

Examples:
  binsight syntax ref/ impl/ -o diff.csv
  binsight syntax old.apigraph.json new.apigraph.json`,
	Args: cobra.ExactArgs(2),
	RunE: runSyntaxCommand,
}

func init() {
	SyntaxCmd.Flags().StringVarP(&syntaxOutput, "output", "o", "", "Output CSV path (omit for interactive viewer)")
}

func runSyntaxCommand(cmd *cobra.Command, args []string) error {
	ref, err := loadAssemblies(args[:1])
	if err != nil {
		return err
	}
	impl, err := loadAssemblies(args[1:])
	if err != nil {
		return err
	}

	t, err := report.Syntax(ref, impl)
	if err != nil {
		return errors.Wrap(err, "syntax comparison failed")
	}
	return emit(t, syntaxOutput)
}
