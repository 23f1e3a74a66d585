/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package compile

import (
	"fmt"
	"os"

	"github.com/ember-lang/ember/pkg/lang"
	"github.com/ember-lang/ember/pkg/lang/bytecode"
	"github.com/ember-lang/ember/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "compile [expression]",
	Short: "Compile a line of source text and print its disassembly",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		prog, err := lang.Compile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		writer := repl.NewOutputWriter(os.Stdout, viper.GetString("ember.output"))
		writer.Write(repl.Disassembly{Program: prog})
		writer.Write(repl.LiteralPool{Program: prog})

		encodePath, _ := cmd.Flags().GetString("encode")
		if encodePath != "" {
			if err := encodeProgram(prog, encodePath); err != nil {
				log.Fatal().Err(err).Msg("unable to encode program")
			}
			log.Info().Str("path", encodePath).Msg("wrote encoded program")
		}
	},
}

func init() {
	Command.Flags().StringP("encode", "e", "", "Write the wire encoding of the program to a file")
}

func encodeProgram(prog *bytecode.Program, path string) error {
	b, err := prog.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshaling program")
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		return errors.Wrap(err, "writing encoded program")
	}

	return nil
}
