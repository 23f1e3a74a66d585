/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scan

import (
	"fmt"
	"os"
	"strings"

	"github.com/ember-lang/ember/pkg/lang"
	"github.com/ember-lang/ember/pkg/lang/scanner"
	"github.com/ember-lang/ember/pkg/repl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "scan [expression]",
	Short: "Tokenize a line of source text",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		input := strings.TrimRight(args[0], " \t\n")

		tokens := scanner.Scan(input)

		writer := repl.NewOutputWriter(os.Stdout, viper.GetString("ember.output"))
		writer.Write(repl.TokenStream{Tokens: tokens})

		lexErrors := lang.LexErrors(tokens)
		for i := range lexErrors {
			fmt.Fprintln(os.Stderr, lexErrors[i].FormatError(input))
		}
		if len(lexErrors) > 0 {
			os.Exit(1)
		}
	},
}
