package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/binsight/binsight/config"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage binsight configuration",
}

var configInitUser bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default binsight.toml",
	Long: `Write a default configuration file. With no argument the file is
created as binsight.toml in the working directory; --user writes it to
~/.binsight/config.toml instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "binsight.toml"
		switch {
		case len(args) == 1:
			path = args[0]
		case configInitUser:
			var err error
			path, err = config.DefaultUserPath()
			if err != nil {
				return err
			}
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		pterm.Success.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitUser, "user", false, "Write to ~/.binsight/config.toml")
	ConfigCmd.AddCommand(configInitCmd)
}
