/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
)

const (
	CommandQuit    = "QUIT"
	CommandHelp    = "HELP"
	CommandTokens  = "TOKENS"
	CommandDis     = "DIS"
	CommandEncode  = "ENCODE"
	CommandUnknown = "UNKNOWN"
)

// Input is one line of REPL input: either a meta command with its argument
// text, or a bare expression (Command is empty).
type Input struct {
	Command string
	Text    string
}

// ParseREPLLine splits input from the command line into a meta command and
// its argument. Meta commands start with ':'; anything else is expression
// text for the compiler.
//
// This function assumes there is no '\n'
func ParseREPLLine(b []byte) Input {
	if len(b) == 0 || b[0] != ':' {
		return Input{Text: string(b)}
	}

	// Get the command
	cmd := b[1:]
	rest := []byte{}

	// all commands have a space after them, if not then they are command
	// only, like :quit
	ind := bytes.IndexByte(cmd, ' ')
	if ind != -1 {
		rest = cmd[ind+1:]
		cmd = cmd[0:ind]
	}

	in := Input{Text: string(rest)}

	switch strings.ToUpper(string(cmd)) {
	case "QUIT", "EXIT", "Q":
		in.Command = CommandQuit
	case "HELP", "H", "?":
		in.Command = CommandHelp
	case "TOKENS", "T":
		in.Command = CommandTokens
	case "DIS", "D":
		in.Command = CommandDis
	case "ENCODE", "E":
		in.Command = CommandEncode
	default:
		in.Command = CommandUnknown
		in.Text = string(cmd)
	}

	return in
}
