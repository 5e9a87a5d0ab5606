// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chat-archiver CLI.
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

// rootCmd is the base command for the chat-archiver CLI.
var rootCmd = &cobra.Command{
	Use:   "chat-archiver",
	Short: "Convert AI conversation exports to Markdown notes",
	Long: `chat-archiver converts a bulk JSON export of AI conversations into one
Markdown file per conversation, each with a frontmatter header, suitable for
a personal note vault.

The convert command runs the conversion; the catalog command maintains an
optional SQLite index of archived conversations for full-text search.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chat-archiver.yaml or ~/.config/chat-archiver/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chat-archiver")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chat-archiver"))
		}
	}

	viper.SetEnvPrefix("CHAT_ARCHIVER")
	viper.AutomaticEnv()

	viper.SetDefault("archive.output_dir", "archive")
	viper.SetDefault("archive.slug_max_len", 50)
	viper.SetDefault("catalog.dir", "catalog")
	viper.SetDefault("catalog.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
