/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/ember-lang/ember/pkg/lang"
	"github.com/ember-lang/ember/pkg/lang/bytecode"
	"github.com/ember-lang/ember/pkg/lang/vm"
	"github.com/ember-lang/ember/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Compile and run a line of source text",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		defines, _ := cmd.Flags().GetStringArray("define")
		names, err := ParseDefines(defines)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid definition")
		}

		prog, err := lang.Compile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		machine := vm.VM{Names: names}
		result, err := machine.Run(prog)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		writer := repl.NewOutputWriter(os.Stdout, viper.GetString("ember.output"))
		writer.Write(repl.Result{Value: result})
	},
}

func init() {
	Command.Flags().StringArrayP("define", "D", []string{}, "Define a name as name=expression (repeatable)")
}

// ParseDefines evaluates a list of name=expression definitions into the
// name table identifiers resolve against. Each right-hand side is itself
// compiled and run, with no names of its own in scope.
func ParseDefines(defines []string) (map[string]bytecode.Value, error) {
	names := map[string]bytecode.Value{}

	for _, d := range defines {
		name, expr, found := strings.Cut(d, "=")
		if !found {
			return nil, fmt.Errorf("definition '%s' is not of the form name=expression", d)
		}

		prog, err := lang.Compile(expr)
		if err != nil {
			return nil, errors.Wrapf(err, "compiling definition '%s'", name)
		}

		machine := vm.VM{}
		v, err := machine.Run(prog)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating definition '%s'", name)
		}

		names[name] = v
	}

	return names, nil
}
