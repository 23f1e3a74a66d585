/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_IDENTIFIER
	TOK_KEYWORD
	TOK_INTEGER
	TOK_FLOAT
	TOK_STRING

	// Expressions
	TOK_BANG
	TOK_EQ_EQ
	TOK_NOT_EQ
	TOK_LESS
	TOK_LESS_EQ
	TOK_GREATER
	TOK_GREATER_EQ
	TOK_PLUS
	TOK_MINUS
	TOK_SLASH
	TOK_STAR

	TOK_PAREN_L
	TOK_PAREN_R
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_KEYWORD:
		return "TOK_KEYWORD"
	case TOK_INTEGER:
		return "TOK_INTEGER"
	case TOK_FLOAT:
		return "TOK_FLOAT"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_BANG:
		return "TOK_BANG"
	case TOK_EQ_EQ:
		return "TOK_EQ_EQ"
	case TOK_NOT_EQ:
		return "TOK_NOT_EQ"
	case TOK_LESS:
		return "TOK_LESS"
	case TOK_LESS_EQ:
		return "TOK_LESS_EQ"
	case TOK_GREATER:
		return "TOK_GREATER"
	case TOK_GREATER_EQ:
		return "TOK_GREATER_EQ"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_SLASH:
		return "TOK_SLASH"
	case TOK_STAR:
		return "TOK_STAR"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	}
	return "TOK_UNKNOWN"
}
