/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ember-lang/ember/pkg/lang/scanner"
)

func TestCSVWriterTokens(t *testing.T) {
	buf := new(bytes.Buffer)
	writer := NewOutputWriter(buf, "csv")

	writer.Write(TokenStream{Tokens: scanner.Scan("1 + 2")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("wanted a header and four token rows, got %d lines", len(lines))
	}

	if lines[0] != "start,end,type,lexeme" {
		t.Errorf("unexpected header: %s", lines[0])
	}

	if lines[1] != "0,1,TOK_INTEGER,1" {
		t.Errorf("unexpected first row: %s", lines[1])
	}

	if !strings.Contains(lines[4], "TOK_EOF") {
		t.Errorf("wanted TOK_EOF in the last row, got: %s", lines[4])
	}
}

func TestJSONWriterTokens(t *testing.T) {
	buf := new(bytes.Buffer)
	writer := NewOutputWriter(buf, "json")

	writer.Write(TokenStream{Tokens: scanner.Scan("1")})

	if !strings.Contains(buf.String(), "\"Lexeme\":\"1\"") {
		t.Errorf("unexpected JSON output: %s", buf.String())
	}
}
