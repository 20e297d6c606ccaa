// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubsite CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pubsite CLI.
var rootCmd = &cobra.Command{
	Use:   "pubsite",
	Short: "Regenerate the publications section of a personal academic site",
	Long: `pubsite fetches a researcher's publication records from the MTMT
bibliographic service, normalizes them into a uniform display model, and
regenerates the marker-bounded publications region of a static HTML page.

The update subcommand runs the whole pipeline; export emits the same
normalized records as CSL-YAML or JSON for reference managers.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubsite.yaml or ~/.config/pubsite/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubsite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubsite"))
		}
	}

	viper.SetEnvPrefix("PUBSITE")
	viper.AutomaticEnv()

	// Module-level constants of the pipeline live in configuration, not
	// in code: author identity, markers, and the target document.
	viper.SetDefault("author_mtid", int64(10081350))
	viper.SetDefault("page_size", 50)
	viper.SetDefault("timeout", "30s")
	viper.SetDefault("user_agent", "pubsite/0.1")
	viper.SetDefault("requests_per_second", 2.0)
	viper.SetDefault("index_path", "index.html")
	viper.SetDefault("marker_start", "<!-- PUBLICATIONS_START -->")
	viper.SetDefault("marker_end", "<!-- PUBLICATIONS_END -->")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
