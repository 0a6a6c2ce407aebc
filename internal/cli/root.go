package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/vegascon/internal/config"
)

// version is set by Execute from the build-time value in main.
var version = "dev"

// rootCmd is the base command; without a subcommand it opens the GUI.
var rootCmd = &cobra.Command{
	Use:   "vegascon",
	Short: "Convert VEGAS project files between application versions",
	Long: `vegascon changes the target version of VEGAS Pro (.veg) and Movie Studio (.vf)
project files by running the msvpvf converter.

Run without arguments to open the window. Use the convert subcommand to
convert a project from scripts, and versions to list supported targets.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI(loadOptions())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vegascon.yaml or ~/.config/vegascon/config.yaml)")
	rootCmd.PersistentFlags().String(config.OptConverter, "", "path to the msvpvf converter executable")
	rootCmd.PersistentFlags().Duration(config.OptTimeout, 0, "abort a conversion after this long (0 = no limit)")
	rootCmd.PersistentFlags().String(config.OptResources, "Res", "directory holding the version icons")
	rootCmd.PersistentFlags().String(config.OptLanguage, "", "interface language (en, ru, pt)")

	for _, name := range []string{config.OptConverter, config.OptTimeout, config.OptResources, config.OptLanguage} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	config.SetDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vegascon")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vegascon"))
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadOptions returns the options resolved from flags, env and config file
func loadOptions() config.Options {
	return config.LoadOptions(viper.GetViper())
}

// Execute runs the root command with the given build version
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.ExecuteContext(context.Background())
}
