package commands

import (
	"github.com/spf13/cobra"

	"github.com/binsight/binsight/config"
	"github.com/binsight/binsight/errors"
	"github.com/binsight/binsight/report"
)

var (
	platformOutput    string
	platformImplicit  bool
	platformMalformed string
)

// PlatformCmd represents the platform command
var PlatformCmd = &cobra.Command{
	Use:   "platform [paths...]",
	Short: "Report per-platform support for each public API",
	Long: `Report which operating-system platforms each public API is restricted
to or excluded from, based on the support/unsupport/obsolescence markers
declared on it or inherited from an enclosing scope.

Each row classifies one API as platform-specific (allow-list),
platform-restricted (deny-list), or "?" (malformed declaration), with one
column per discovered platform holding the merged version range.

Examples:
  binsight platform ./bin                     # Interactive viewer
  binsight platform lib.apigraph.json -o platforms.csv
  binsight platform ./bin --no-implicit       # Only directly declared data`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlatformCommand,
}

func init() {
	PlatformCmd.Flags().StringVarP(&platformOutput, "output", "o", "", "Output CSV path (omit for interactive viewer)")
	PlatformCmd.Flags().BoolVar(&platformImplicit, "no-implicit", false, "Disable inheriting support data from enclosing scopes")
	PlatformCmd.Flags().StringVar(&platformMalformed, "malformed", "", "Malformed cell policy: empty or render (default from config)")
}

func runPlatformCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := report.PlatformOptions{
		ImplicitLookup: cfg.Report.ImplicitLookup && !platformImplicit,
	}
	policy := cfg.Report.MalformedCells
	if platformMalformed != "" {
		policy = platformMalformed
	}
	switch policy {
	case "empty":
		opts.MalformedCells = report.MalformedEmpty
	case "render":
		opts.MalformedCells = report.MalformedRender
	default:
		return errors.NewInvalidRequestError("unknown malformed policy %q", policy)
	}

	assemblies, err := loadAssemblies(args)
	if err != nil {
		return err
	}

	t, err := report.Platform(assemblies, opts)
	if err != nil {
		return errors.Wrap(err, "platform analysis failed")
	}
	return emit(t, platformOutput)
}
