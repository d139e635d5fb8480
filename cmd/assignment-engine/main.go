// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the assignment-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/assignment-engine/internal/secrets"
	"github.com/pdiddy/assignment-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the assignment-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "assignment-engine",
	Short: "Analyze coursework and draft responses",
	Long: `assignment-engine turns an assignment description into a structured
analysis (type, topics, requirements, suggested approach, links), synthesizes
a Markdown draft from that analysis, and rewrites drafts on instruction.

The same operations are served over HTTP by the serve command. Drafts can be
kept in a local SQLite store and exported to YAML or JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secrets.DefaultDir, os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./assignment-engine.yaml or ~/.config/assignment-engine/assignment-engine.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory holding the drafts database and exports")
	viper.BindPFlag("store.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("assignment-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "assignment-engine"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("ASSIGNMENT_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	viper.SetDefault("fetch.timeout", 30*time.Second)
	viper.SetDefault("fetch.user_agent", "assignment-engine/"+version)
	viper.SetDefault("fetch.max_retries", 5)
	viper.SetDefault("fetch.max_bytes", 2<<20)
	viper.SetDefault("fetch.concurrency", 4)
	viper.SetDefault("fetch.lms_host", "")
	viper.SetDefault("store.data_dir", "data")
	viper.SetDefault("store.max_results", 50)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("log.level", "info")
}

func fetchConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("fetch.timeout"),
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		MaxRetries:  viper.GetInt("fetch.max_retries"),
		MaxBytes:    viper.GetInt64("fetch.max_bytes"),
		Concurrency: viper.GetInt("fetch.concurrency"),
		LMSHost:     viper.GetString("fetch.lms_host"),
		LMSToken:    loadedSecrets.Get(secrets.LMSToken),
	}
}

func storeConfig() types.StoreConfig {
	return types.StoreConfig{
		DataDir:    viper.GetString("store.data_dir"),
		MaxResults: viper.GetInt("store.max_results"),
	}
}

func serverConfig() types.ServerConfig {
	return types.ServerConfig{
		Addr:            viper.GetString("server.addr"),
		ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		Log:             types.LogConfig{Level: viper.GetString("log.level")},
		Store:           storeConfig(),
		Fetch:           fetchConfig(),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
