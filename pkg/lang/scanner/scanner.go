/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ember-lang/ember/pkg/common/parse"
)

// Keywords recognized by the scanner. Everything else that looks like a
// word is an identifier.
var keywords = map[string]bool{
	"true":  true,
	"false": true,
}

type Scanner struct {
	Input     string
	Start     int
	Pos       int
	LastWidth int
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier or keyword.
//
// Grammar:
//
//	identifier      = ( ALPHA / '_' ) *(ALPHA / DIGIT / '_')
func (s *Scanner) MatchIdentifier() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	for unicode.IsDigit(r) || unicode.IsLetter(r) || r == '_' {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchInteger returns the length of the next token, assuming it is a
// number
//
// Grammar:
//
//	integer         = 1*DIGIT
func (s *Scanner) MatchInteger() int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for i := s.Pos; unicode.IsDigit(r); {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchFloat returns the length of the next token, assuming it is a
// floating point number
//
// Grammar:
//
//	float           = *DIGIT "." 1*DIGIT
func (s *Scanner) MatchFloat() int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	lsize := 0
	rsize := 0

	for i := s.Pos; unicode.IsDigit(r); {
		lsize += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	if r != '.' {
		return 0
	}

	r, width = utf8.DecodeRuneInString(s.Input[s.Pos+lsize+1:])

	for i := s.Pos + lsize + 1; unicode.IsDigit(r); {
		rsize += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	if rsize == 0 {
		return 0
	}

	return lsize + rsize + 1
}

// MatchString returns the length of the next token, assuming it is a
// string
//
// Grammar:
//
//	string          = DQUOTE *CHAR DQUOTE / SQUOTE *CHAR SQUOTE
func (s *Scanner) MatchString() int {
	r, _ := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	quote := r
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos+1:])
	for r != quote {
		if r == utf8.RuneError {
			return 0
		}
		size += width
		r, width = utf8.DecodeRuneInString(s.Input[s.Pos+size+1:])
	}

	// Include quote runes
	return size + 2
}

// Emit the next Token found on Scanner.Input. Once the input is exhausted,
// every subsequent call returns a TOK_EOF token located just past the end
// of the input.
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	oldStart := s.Start

	for {
		if s.Pos >= len(s.Input) {
			s.Start = s.Pos
			t.Type = TOK_EOF
			t.Location = parse.Location{Start: s.Pos, End: s.Pos}
			s.LastWidth = s.Start - oldStart
			return t
		}

		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.Start = s.Pos
		found := true
		skip := 0

		switch {
		case unicode.IsSpace(r):
			skip = width
			found = false
		case r == '(':
			t.Type = TOK_PAREN_L
			skip = width
		case r == ')':
			t.Type = TOK_PAREN_R
			skip = width
		case r == '=':
			if strings.HasPrefix(s.Input[s.Pos:], "==") {
				t.Type = TOK_EQ_EQ
				skip = len("==")
				break
			}
			t.Type = TOK_INVALID
			skip = s.SkipToBoundary(isDelimiter)
		case r == '!':
			if strings.HasPrefix(s.Input[s.Pos:], "!=") {
				t.Type = TOK_NOT_EQ
				skip = len("!=")
				break
			}
			t.Type = TOK_BANG
			skip = width
		case r == '<':
			if strings.HasPrefix(s.Input[s.Pos:], "<=") {
				t.Type = TOK_LESS_EQ
				skip = len("<=")
				break
			}
			t.Type = TOK_LESS
			skip = width
		case r == '>':
			if strings.HasPrefix(s.Input[s.Pos:], ">=") {
				t.Type = TOK_GREATER_EQ
				skip = len(">=")
				break
			}
			t.Type = TOK_GREATER
			skip = width
		case r == '*':
			t.Type = TOK_STAR
			skip = width
		case r == '/':
			t.Type = TOK_SLASH
			skip = width
		case r == '+':
			t.Type = TOK_PLUS
			skip = width
		case r == '-':
			t.Type = TOK_MINUS
			skip = width
		case r == '\'' || r == '"':
			skip = s.MatchString()
			if skip > 0 {
				t.Type = TOK_STRING
			} else {
				t.Type = TOK_INVALID
				skip = s.SkipToBoundary(isDelimiter)
			}
		case r == '.':
			skip = s.MatchFloat()
			if skip > 0 {
				t.Type = TOK_FLOAT
			} else {
				t.Type = TOK_INVALID
				skip = s.SkipToBoundary(isDelimiter)
			}
		case unicode.IsDigit(r):
			skip = s.MatchFloat()
			if skip > 0 {
				t.Type = TOK_FLOAT
			} else {
				skip = s.MatchInteger()
				t.Type = TOK_INTEGER
			}
		case unicode.IsLetter(r) || r == '_':
			skip = s.MatchIdentifier()
			if keywords[s.Input[s.Pos:s.Pos+skip]] {
				t.Type = TOK_KEYWORD
			} else {
				t.Type = TOK_IDENTIFIER
			}
		default:
			t.Type = TOK_INVALID
			skip = s.SkipToBoundary(isDelimiter)
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	s.Start = s.Pos

	s.LastWidth = s.Start - oldStart

	return t
}

// Rewind the last read token
func (s *Scanner) Rewind() {
	s.Start -= s.LastWidth
	s.Pos = s.Start
	s.LastWidth = 0
}

// Scan tokenizes the whole of input in one pass. The returned sequence
// always ends with exactly one TOK_EOF token; lexical errors surface as
// TOK_INVALID tokens carrying the offending span, and scanning continues
// past them.
func Scan(input string) []parse.Token {
	s := Scanner{Input: input}
	tokens := []parse.Token{}

	for {
		tok := s.Emit()
		tokens = append(tokens, tok)
		if tok.Type == TOK_EOF {
			break
		}
	}

	return tokens
}

type boundaryFunc func(rune) bool

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')'
}

// SkipToBoundary returns the number of bytes until the next delimiter.
// This is useful for skipping over invalid tokens.
func (s *Scanner) SkipToBoundary(boundary boundaryFunc) int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for !boundary(r) && s.Pos+size < len(s.Input) {
		size += width
		r, width = utf8.DecodeRuneInString(s.Input[s.Pos+size:])
	}

	return size
}
