// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the starter-export CLI, which exports
// Web of Science Starter API results to a Core-like Excel workbook.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/starter-export/internal/observability"
	"github.com/pdiddy/starter-export/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const appName = "starter-export"

// logger is built from --log-level and --log-format before any command runs.
var logger = zerolog.Nop()

// rootCmd is the base command for the starter-export CLI.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Export Web of Science Starter API results to a Core-like workbook",
	Long: `starter-export queries the Web of Science Starter API and writes every
matching record to an .xlsx workbook with three sheets: the Starter subset,
a Core Collection compatible layout, and a run summary.

The API key is read from STARTER_APIKEY (environment or .env), the config
file, .secrets/starter-apikey, or -k/--key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = observability.NewLogger(observability.LoggingConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
			Output: "stderr",
		})
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./starter-export.yaml or $XDG_CONFIG_HOME/starter-export/starter-export.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if err := secrets.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	viper.SetEnvPrefix("STARTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}
