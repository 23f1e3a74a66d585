/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ember

import (
	"fmt"
	"os"

	"github.com/ember-lang/ember/cmd/ember/compile"
	"github.com/ember-lang/ember/cmd/ember/eval"
	"github.com/ember-lang/ember/cmd/ember/repl"
	"github.com/ember-lang/ember/cmd/ember/scan"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "ember",
		Short: "Ember is a small interactive expression language",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format of results [csv, json, text]")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the ember config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("ember.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("ember.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("ember.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("ember version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	repl.Command.Version = rootCmd.Version
	scan.Command.Version = rootCmd.Version
	compile.Command.Version = rootCmd.Version
	eval.Command.Version = rootCmd.Version
	rootCmd.AddCommand(repl.Command)
	rootCmd.AddCommand(scan.Command)
	rootCmd.AddCommand(compile.Command)
	rootCmd.AddCommand(eval.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
