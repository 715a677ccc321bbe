// internal/commands/root.go
package benchplot

import (
	"fmt"
	"os"

	"github.com/mwiater/benchplot/internal/appconfig"
	"github.com/mwiater/benchplot/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "benchplot",
	Short:        "benchplot: reduce benchmark timing logs to averages and bar charts",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		appconfig.SetDefaults(viper.GetViper())
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		cfg, err := appconfig.Load(viper.GetViper())
		if err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFile, cfg.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: config/benchplot.yaml or ./benchplot.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "also write diagnostics to stderr")
	rootCmd.PersistentFlags().String("logFile", "", "append diagnostics to this file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig points viper at the config file named by --config, or at the
// default search locations.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}
	viper.SetConfigName("benchplot")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
}

// ensureConfigLoaded reads the config file. A missing file found by search is
// not an error; defaults and flags apply.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
