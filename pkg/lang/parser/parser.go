/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/ember-lang/ember/pkg/common/parse"
	"github.com/ember-lang/ember/pkg/lang/bytecode"
	"github.com/ember-lang/ember/pkg/lang/scanner"
)

// Parser consumes a scanned token sequence and emits a stack-machine
// Program. Instructions come out in post-order: both operands of a binary
// operator are fully emitted before the operator instruction itself, so
// the flat sequence is directly executable.
type Parser struct {
	Tokens []parse.Token
	Input  string

	pos int
}

// Parse compiles a full token sequence into a Program. The sequence must
// end with a TOK_EOF token; anything left over after one complete
// expression is an error. On failure no partial Program is returned.
func Parse(tokens []parse.Token, input string) (prog *bytecode.Program, err error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != scanner.TOK_EOF {
		return nil, errors.New("token sequence does not end with TOK_EOF")
	}

	p := Parser{Tokens: tokens, Input: input}

	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(parse.SyntaxError)
			if !ok {
				panic(e)
			}
			prog = nil
			err = errors.New(syntaxError.FormatError(p.Input))
		}
	}()

	prog = &bytecode.Program{}
	p.expression(prog)

	// If we didn't consume all the input, the expression was followed by
	// trailing tokens.
	if tok := p.next(); tok.Type != scanner.TOK_EOF {
		panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: unexpected token '%s', expected end of input", tok.Lexeme)))
	}

	return prog, nil
}

func (p *Parser) next() parse.Token {
	if p.pos >= len(p.Tokens) {
		return p.Tokens[len(p.Tokens)-1]
	}

	tok := p.Tokens[p.pos]
	p.pos++
	return tok
}

func (p *Parser) rewind() {
	if p.pos > 0 {
		p.pos--
	}
}

// expression emits a comparison, followed by any equality operators
//
// Grammar:
//
//	expression      = comparison *( ( "!=" / "==" ) comparison )
func (p *Parser) expression(prog *bytecode.Program) {
	p.comparison(prog)

	for {
		t := p.next()

		switch t.Type {
		case scanner.TOK_EQ_EQ:
			p.comparison(prog)
			prog.Emit(bytecode.OP_EQUAL)
		case scanner.TOK_NOT_EQ:
			p.comparison(prog)
			prog.Emit(bytecode.OP_NOT_EQUAL)
		default:
			p.rewind()
			return
		}
	}
}

// comparison emits a term, followed by any ordering operators
//
// Grammar:
//
//	comparison      = term *( ( ">" / ">=" / "<" / "<=" ) term )
func (p *Parser) comparison(prog *bytecode.Program) {
	p.term(prog)

	for {
		t := p.next()

		switch t.Type {
		case scanner.TOK_LESS:
			p.term(prog)
			prog.Emit(bytecode.OP_LESS)
		case scanner.TOK_LESS_EQ:
			p.term(prog)
			prog.Emit(bytecode.OP_LESS_EQ)
		case scanner.TOK_GREATER:
			p.term(prog)
			prog.Emit(bytecode.OP_GREATER)
		case scanner.TOK_GREATER_EQ:
			p.term(prog)
			prog.Emit(bytecode.OP_GREATER_EQ)
		default:
			p.rewind()
			return
		}
	}
}

// term emits a factor, followed by any additive operators
//
// Grammar:
//
//	term            = factor *( ( "-" / "+" ) factor )
func (p *Parser) term(prog *bytecode.Program) {
	p.factor(prog)

	for {
		t := p.next()

		switch t.Type {
		case scanner.TOK_PLUS:
			p.factor(prog)
			prog.Emit(bytecode.OP_ADD)
		case scanner.TOK_MINUS:
			p.factor(prog)
			prog.Emit(bytecode.OP_SUBTRACT)
		default:
			p.rewind()
			return
		}
	}
}

// factor emits a unary, followed by any multiplicative operators
//
// Grammar:
//
//	factor          = unary *( ( "/" / "*" ) unary )
func (p *Parser) factor(prog *bytecode.Program) {
	p.unary(prog)

	for {
		t := p.next()

		switch t.Type {
		case scanner.TOK_STAR:
			p.unary(prog)
			prog.Emit(bytecode.OP_MULTIPLY)
		case scanner.TOK_SLASH:
			p.unary(prog)
			prog.Emit(bytecode.OP_DIVIDE)
		default:
			p.rewind()
			return
		}
	}
}

// unary emits a prefix operator applied to a nested unary, or a primary
//
// Grammar:
//
//	unary           = ( "-" / "!" ) unary / primary
func (p *Parser) unary(prog *bytecode.Program) {
	t := p.next()

	switch t.Type {
	case scanner.TOK_MINUS:
		p.unary(prog)
		prog.Emit(bytecode.OP_NEGATE)
	case scanner.TOK_BANG:
		p.unary(prog)
		prog.Emit(bytecode.OP_NOT)
	default:
		p.rewind()
		p.primary(prog)
	}
}

// primary emits a leaf of the expression
//
// Grammar:
//
//	primary         = integer / float / string / boolean / identifier / "(" expression ")"
func (p *Parser) primary(prog *bytecode.Program) {
	t := p.next()

	switch t.Type {
	case scanner.TOK_INTEGER, scanner.TOK_FLOAT, scanner.TOK_STRING, scanner.TOK_KEYWORD:
		prog.EmitOperand(bytecode.OP_CONSTANT, prog.AddLiteral(bytecode.MakeFromToken(t)))
	case scanner.TOK_IDENTIFIER:
		prog.EmitOperand(bytecode.OP_LOAD_NAME, prog.AddLiteral(bytecode.MakeString(t.Lexeme)))
	case scanner.TOK_PAREN_L:
		p.expression(prog)

		// Expect a closing paren
		t = p.next()
		if t.Type != scanner.TOK_PAREN_R {
			panic(parse.NewSyntaxError(t, fmt.Sprintf("Error: unexpected token '%s', expected closing parenthesis", t.Lexeme)))
		}
	case scanner.TOK_INVALID:
		panic(parse.NewSyntaxError(t, fmt.Sprintf("Error: unrecognized input '%s'", t.Lexeme)))
	case scanner.TOK_EOF:
		panic(parse.NewSyntaxError(t, "Error: expected expression"))
	default:
		panic(parse.NewSyntaxError(t, fmt.Sprintf("Error: unexpected token '%s', expected expression", t.Lexeme)))
	}
}
