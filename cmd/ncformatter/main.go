// Package main is the entry point for the ncformatter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/joshuahamrick/ncformatter/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ncformatter CLI.
var rootCmd = &cobra.Command{
	Use:   "ncformatter",
	Short: "Convert Word notice templates into normalized letter HTML",
	Long: `ncformatter reads mortgage notice templates written in Word, extracts
their paragraphs and tables, and rewrites the letter into the canonical
HTML used by the letter engine.

Run "ncformatter serve" for the HTTP endpoint or "ncformatter convert" for
one file at a time.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ncformatter.yaml or ~/.config/ncformatter/ncformatter.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-format", "json", "log format: json or console")
	bindFlags(rootCmd.PersistentFlags(), "log-level", "log-format")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ncformatter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ncformatter"))
		}
	}

	viper.SetEnvPrefix("NCFORMATTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags binds each named flag to the config key of the same name
// with dashes replaced by underscores.
func bindFlags(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		key := strings.ReplaceAll(name, "-", "_")
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// newLogger builds the logger from the log_level and log_format keys.
func newLogger() (*zap.Logger, error) {
	return logging.BuildLogger(viper.GetString("log_level"), viper.GetString("log_format"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
