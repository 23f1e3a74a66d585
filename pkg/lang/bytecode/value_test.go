/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package bytecode

import (
	"testing"

	"github.com/ember-lang/ember/pkg/common/parse"
	"github.com/ember-lang/ember/pkg/lang/scanner"
)

func TestMakeFromToken(t *testing.T) {
	cases := []struct {
		tokType scanner.TokenType
		lexeme  string
		want    Value
	}{
		{scanner.TOK_INTEGER, "42", MakeInt(42)},
		{scanner.TOK_INTEGER, "010", MakeInt(10)},
		{scanner.TOK_INTEGER, "09", MakeInt(9)},
		{scanner.TOK_FLOAT, "1.5", MakeFloat(1.5)},
		{scanner.TOK_FLOAT, ".5", MakeFloat(0.5)},
		{scanner.TOK_STRING, "'hello'", MakeString("hello")},
		{scanner.TOK_STRING, `"hello"`, MakeString("hello")},
		{scanner.TOK_KEYWORD, "true", MakeBoolean(true)},
		{scanner.TOK_KEYWORD, "false", MakeBoolean(false)},
	}

	for _, c := range cases {
		got := MakeFromToken(parse.Token{Type: c.tokType, Lexeme: c.lexeme})
		if got != c.want {
			t.Errorf("MakeFromToken(%s %q) = %v, wanted %v", c.tokType.ToString(), c.lexeme, got, c.want)
		}
	}
}

func TestBinaryOpPromotion(t *testing.T) {
	v, err := BinaryOp(OP_ADD, MakeInt(1), MakeFloat(0.5))
	if err != nil {
		t.Fatal(err)
	}

	if v.Kind() != Float {
		t.Error("wanted float, got", v.Kind().ToString())
	}

	if FloatVal(v) != 1.5 {
		t.Error("wanted 1.5, got", v.String())
	}
}

func TestBinaryOpIntArithmetic(t *testing.T) {
	v, err := BinaryOp(OP_MULTIPLY, MakeInt(6), MakeInt(7))
	if err != nil {
		t.Fatal(err)
	}

	if IntVal(v) != 42 {
		t.Error("wanted 42, got", v.String())
	}
}

func TestBinaryOpDivisionByZero(t *testing.T) {
	if _, err := BinaryOp(OP_DIVIDE, MakeInt(1), MakeInt(0)); err == nil {
		t.Error("expected an error dividing by zero")
	}

	if _, err := BinaryOp(OP_DIVIDE, MakeFloat(1), MakeFloat(0)); err == nil {
		t.Error("expected an error dividing by zero")
	}
}

func TestBinaryOpTypeMismatch(t *testing.T) {
	if _, err := BinaryOp(OP_ADD, MakeString("a"), MakeInt(1)); err == nil {
		t.Error("expected an error adding a string to an int")
	}
}

func TestEquality(t *testing.T) {
	cases := []struct {
		left, right Value
		want        bool
	}{
		{MakeInt(5), MakeInt(5), true},
		{MakeInt(5), MakeFloat(5.0), true},
		{MakeInt(5), MakeInt(6), false},
		{MakeString("a"), MakeString("a"), true},
		{MakeString("5"), MakeInt(5), false},
		{MakeBoolean(true), MakeBoolean(true), true},
	}

	for _, c := range cases {
		v, err := BinaryOp(OP_EQUAL, c.left, c.right)
		if err != nil {
			t.Fatal(err)
		}

		if BoolVal(v) != c.want {
			t.Errorf("%v == %v: wanted %v", c.left, c.right, c.want)
		}
	}
}

func TestUnaryOp(t *testing.T) {
	v, err := UnaryOp(OP_NEGATE, MakeInt(5))
	if err != nil {
		t.Fatal(err)
	}
	if IntVal(v) != -5 {
		t.Error("wanted -5, got", v.String())
	}

	v, err = UnaryOp(OP_NOT, MakeBoolean(false))
	if err != nil {
		t.Fatal(err)
	}
	if !BoolVal(v) {
		t.Error("wanted true")
	}

	if _, err = UnaryOp(OP_NEGATE, MakeBoolean(true)); err == nil {
		t.Error("expected an error negating a boolean")
	}

	if _, err = UnaryOp(OP_NOT, MakeInt(1)); err == nil {
		t.Error("expected an error notting an int")
	}
}
