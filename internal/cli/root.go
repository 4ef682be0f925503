// internal/cli/root.go
package augusto

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/lucasrafaldini/augusto/internal/appconfig"
	"github.com/lucasrafaldini/augusto/internal/logging"
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

// rootCmd represents the base command. Given a single word and no subcommand
// it behaves like 'anagram <word>'.
var rootCmd = &cobra.Command{
	Use:   "augusto [word]",
	Short: "augusto: creative word operations inspired by concrete poetry",
	Long: `augusto generates anagrams, draws words as block letters filled with another
word, and measures how long those operations take.

Running 'augusto <word>' is the same as 'augusto anagram <word>'.`,
	Example: `  augusto anagram "cat"
  augusto art "RUST" "code"
  augusto art "RUST" "code" 2
  augusto bench anagram "test"
  augusto bench art "HI" "rust"
  augusto compare "cat" "test" "program"`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// Materialize the merged configuration (flags > config > defaults).
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if cfg.NoColor {
			color.NoColor = true
		}

		if err := logging.Init(cfg.LogFilePath(), cfg.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		slog.Debug("configuration loaded", "file", cfg.ConfigPath, "command", cmd.CommandPath())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runAnagram(cmd, args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Command names and aliases match regardless of case ("bench ANA").
	cobra.EnableCaseInsensitive = true
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./augusto.json or ./config/augusto.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("jsonMode", false, "print results as JSON")
	rootCmd.PersistentFlags().Bool("noColor", false, "disable colored output")
	rootCmd.PersistentFlags().Bool("progress", false, "show a spinner while comparing (redraws share the CPU with the timed loop)")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")
	rootCmd.PersistentFlags().String("exportDir", "", "directory for exported benchmark results")

	bindFlags()
}

// bindFlags binds the persistent flags to Viper keys (flags override config).
func bindFlags() {
	for _, name := range []string{"debug", "jsonMode", "noColor", "progress", "logFile", "exportDir"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig tells viper where to look for the config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}
	viper.SetConfigName(appconfig.DefaultConfigName)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("config")
}

// ensureConfigLoaded reads and validates the config and sets safe defaults.
// A missing file is only an error when one was named with --config.
func ensureConfigLoaded() error {
	defaults := appconfig.Default()
	viper.SetDefault("spacing", defaults.Spacing)
	viper.SetDefault("exportDir", defaults.ExportDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %q not found", cfgFile)
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return appconfig.ValidateFile(viper.ConfigFileUsed())
}

// activeConfig returns the loaded configuration, or the defaults before any
// command has run.
func activeConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Default()
	}
	return *currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
