package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binsight/binsight/cmd/binsight/commands"
	"github.com/binsight/binsight/config"
	"github.com/binsight/binsight/logger"
)

var rootCmd = &cobra.Command{
	Use:   "binsight",
	Short: "binsight - binary API surface inspection",
	Long: `binsight - inspect the public API surface of compiled binaries.

binsight analyzes pre-resolved symbol-graph snapshots and reports platform
support, nullable-annotation coverage, and declaration differences between
independently built snapshots.

Available commands:
  platform - Report per-platform support/version ranges for each public API
  nullable - Report nullable-annotation stats for each public API
  syntax   - Compare rendered declarations between two snapshots
  config   - Manage binsight configuration
  version  - Show version information

Examples:
  binsight platform ./bin            # Analyze snapshots in a directory
  binsight platform lib.apigraph.json -o report.csv
  binsight syntax ref/ impl/ -o diff.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		jsonLogs = resolveJSONLogs(cmd.Flags().Changed("json-logs"), jsonLogs)
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

// resolveJSONLogs picks the log encoding. An explicit --json-logs flag wins;
// otherwise the log.json config setting decides. A config that fails to load
// falls back to the flag default so logging still comes up; the command
// itself reports the config error.
func resolveJSONLogs(flagSet, flagValue bool) bool {
	if flagSet {
		return flagValue
	}
	cfg, err := config.Load()
	if err != nil {
		return flagValue
	}
	return cfg.Log.JSON
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.PlatformCmd)
	rootCmd.AddCommand(commands.NullableCmd)
	rootCmd.AddCommand(commands.SyntaxCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
