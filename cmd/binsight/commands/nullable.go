package commands

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/binsight/binsight/config"
	"github.com/binsight/binsight/errors"
	"github.com/binsight/binsight/report"
	"github.com/binsight/binsight/surface"
)

var (
	nullableOutput  string
	nullableFx      string
	nullableNumeric bool
)

// NullableCmd represents the nullable command
var NullableCmd = &cobra.Command{
	Use:   "nullable [paths...]",
	Short: "Report nullable-annotation stats for each public API",
	Long: `Report, for every public API, whether its signature has any
reference-typed position that could carry a nullability annotation, and
whether at least one such position actually does.

Examples:
  binsight nullable ./bin -o nullable.csv
  binsight nullable ./bin --fx net8.0 --numeric`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNullableCommand,
}

func init() {
	NullableCmd.Flags().StringVarP(&nullableOutput, "output", "o", "", "Output CSV path (omit for interactive viewer)")
	NullableCmd.Flags().StringVar(&nullableFx, "fx", "", "Framework label for the Fx column (default: first input's base name)")
	NullableCmd.Flags().BoolVar(&nullableNumeric, "numeric", false, "Add 1/0 duplicate columns for aggregation")
}

func runNullableCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	assemblies, err := loadAssemblies(args)
	if err != nil {
		return err
	}

	fx := nullableFx
	if fx == "" {
		fx = strings.TrimSuffix(filepath.Base(args[0]), surface.SnapshotExt)
	}

	t, err := report.Nullable(assemblies, report.NullableOptions{
		Fx:             fx,
		NumericColumns: nullableNumeric || cfg.Report.NumericColumns,
	})
	if err != nil {
		return errors.Wrap(err, "nullable analysis failed")
	}
	return emit(t, nullableOutput)
}
