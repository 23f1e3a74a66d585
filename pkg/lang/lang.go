/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package lang ties the two front end stages together: scanning a line of
// source text into tokens, and parsing those tokens into an executable
// Program.
package lang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ember-lang/ember/pkg/common/parse"
	"github.com/ember-lang/ember/pkg/lang/bytecode"
	"github.com/ember-lang/ember/pkg/lang/parser"
	"github.com/ember-lang/ember/pkg/lang/scanner"
)

// LexErrors collects every invalid token in a scanned sequence. Scanning
// never stops at the first bad character, so one pass surfaces all of the
// lexical errors in the input.
func LexErrors(tokens []parse.Token) []parse.SyntaxError {
	errs := []parse.SyntaxError{}

	for _, tok := range tokens {
		if tok.Type == scanner.TOK_INVALID {
			errs = append(errs, parse.NewSyntaxError(tok, fmt.Sprintf("Error: unrecognized input '%s'", tok.Lexeme)))
		}
	}

	return errs
}

// Compile runs both stages on one line of source text. Lexical errors are
// reported together, before any parsing happens; a grammatical error stops
// the parse and no partial program is returned.
func Compile(input string) (*bytecode.Program, error) {
	input = strings.TrimRight(input, " \t\n")

	tokens := scanner.Scan(input)

	if lexErrors := LexErrors(tokens); len(lexErrors) > 0 {
		var b strings.Builder
		for i := range lexErrors {
			b.WriteString(lexErrors[i].FormatError(input))
		}
		return nil, errors.New(strings.TrimRight(b.String(), "\n"))
	}

	return parser.Parse(tokens, input)
}
