package benchplot

import (
	"github.com/mwiater/benchplot/internal/appconfig"
	"github.com/spf13/cobra"
)

// showCmd groups the commands that display resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resources",
}

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the config file is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		appconfig.ShowConfig(cmd.OutOrStdout(), GetConfig())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
