/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/ember-lang/ember/cmd/ember/eval"
	"github.com/ember-lang/ember/pkg/lang"
	"github.com/ember-lang/ember/pkg/lang/bytecode"
	"github.com/ember-lang/ember/pkg/lang/scanner"
	"github.com/ember-lang/ember/pkg/lang/vm"
	"github.com/ember-lang/ember/pkg/repl"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log zerolog.Logger

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-compile-run loop",

	Run: func(cmd *cobra.Command, args []string) {
		output := viper.GetString("ember.output")
		if len(filterStringSlice([]string{"csv", "text", "json"}, output)) != 1 {
			log.Fatal().Msg("unsupported output format")
		}

		defines, _ := cmd.Flags().GetStringArray("define")
		names, err := eval.ParseDefines(defines)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid definition")
		}

		log = log.With().Str("session", uuid.New().String()).Logger()

		readlinePrompt(names, output)
	},
}

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Logger()

	// Flags for this command
	Command.Flags().StringArrayP("define", "D", []string{}, "Define a name as name=expression (repeatable)")
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(names map[string]bytecode.Value, output string) {
	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem(":help"),
		readline.PcItem(":tokens"),
		readline.PcItem(":dis"),
		readline.PcItem(":encode"),
		readline.PcItem(":quit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Configure output writer
	writer := repl.NewOutputWriter(os.Stdout, output)

	machine := vm.VM{Names: names}

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		in := repl.ParseREPLLine([]byte(line))

		switch in.Command {
		case repl.CommandQuit:
			return
		case repl.CommandHelp:
			fmt.Println("usage:")
			fmt.Println(completer.Tree("    "))
		case repl.CommandTokens:
			tokens := scanner.Scan(in.Text)
			writer.Write(repl.TokenStream{Tokens: tokens})

			lexErrors := lang.LexErrors(tokens)
			for i := range lexErrors {
				fmt.Println(lexErrors[i].FormatError(in.Text))
			}
		case repl.CommandDis:
			prog, err := lang.Compile(in.Text)
			if err != nil {
				fmt.Println(err)
				continue
			}

			writer.Write(repl.Disassembly{Program: prog})
			writer.Write(repl.LiteralPool{Program: prog})
		case repl.CommandEncode:
			prog, err := lang.Compile(in.Text)
			if err != nil {
				fmt.Println(err)
				continue
			}

			b, err := prog.Marshal()
			if err != nil {
				log.Error().Err(err).Msg("unable to encode program")
				continue
			}

			fmt.Println(hex.EncodeToString(b))
		case repl.CommandUnknown:
			log.Error().Msgf("unknown command ':%s'", in.Text)
		default:
			prog, err := lang.Compile(in.Text)
			if err != nil {
				fmt.Println(err)
				continue
			}

			result, err := machine.Run(prog)
			if err != nil {
				fmt.Println(err)
				continue
			}

			writer.Write(repl.Result{Value: result})
		}
	}
}
