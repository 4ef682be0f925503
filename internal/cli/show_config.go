// internal/cli/show_config.go
package augusto

import (
	"github.com/fatih/color"
	"github.com/lucasrafaldini/augusto/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showConfigRaw bool

// showConfigCmd implements 'show config', which prints the merged settings so
// users can check that the JSON config was loaded and overridden by flags.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := activeConfig()
		if showConfigRaw {
			appconfig.DumpConfig(cmd.OutOrStdout(), &cfg, !color.NoColor)
			return
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), &cfg)
	},
}

func init() {
	showConfigCmd.Flags().BoolVar(&showConfigRaw, "raw", false, "dump the raw configuration struct")
	showCmd.AddCommand(showConfigCmd)
}
