/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strconv"

	"github.com/ember-lang/ember/pkg/common/parse"
	"github.com/ember-lang/ember/pkg/lang/bytecode"
)

// Printable is anything an OutputWriter can render as rows of columns.
type Printable interface {
	Headers() []string
	Values() [][]string
}

// TokenStream renders a scanned token sequence.
type TokenStream struct {
	Tokens []parse.Token
}

func (t TokenStream) Headers() []string {
	return []string{"start", "end", "type", "lexeme"}
}

func (t TokenStream) Values() [][]string {
	rows := [][]string{}
	for _, tok := range t.Tokens {
		rows = append(rows, []string{
			strconv.Itoa(tok.Location.Start),
			strconv.Itoa(tok.Location.End),
			tok.Type.ToString(),
			tok.Lexeme,
		})
	}
	return rows
}

// Disassembly renders the instruction sequence of a compiled program.
type Disassembly struct {
	Program *bytecode.Program
}

func (d Disassembly) Headers() []string {
	return []string{"addr", "opcode", "arg", "literal"}
}

func (d Disassembly) Values() [][]string {
	rows := [][]string{}
	for i, inst := range d.Program.Instructions {
		arg, literal := "", ""
		if inst.Op.HasOperand() {
			arg = strconv.Itoa(inst.Arg)
			literal = d.Program.Literals[inst.Arg].String()
		}
		rows = append(rows, []string{strconv.Itoa(i), inst.Op.ToString(), arg, literal})
	}
	return rows
}

// LiteralPool renders the literal pool of a compiled program.
type LiteralPool struct {
	Program *bytecode.Program
}

func (l LiteralPool) Headers() []string {
	return []string{"slot", "kind", "value"}
}

func (l LiteralPool) Values() [][]string {
	rows := [][]string{}
	for i, lit := range l.Program.Literals {
		rows = append(rows, []string{strconv.Itoa(i), lit.Kind().ToString(), lit.String()})
	}
	return rows
}

// Result renders a value produced by the evaluator.
type Result struct {
	Value bytecode.Value
}

func (r Result) Headers() []string {
	return []string{"kind", "value"}
}

func (r Result) Values() [][]string {
	return [][]string{{r.Value.Kind().ToString(), r.Value.String()}}
}
