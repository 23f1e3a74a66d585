/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package bytecode

import (
	"fmt"
	"strconv"

	"github.com/ember-lang/ember/pkg/common/parse"
	"github.com/ember-lang/ember/pkg/lang/scanner"
)

type Kind int

const (
	Unknown Kind = iota

	Boolean
	String
	Int
	Float
)

func (k Kind) ToString() string {
	switch k {
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "unknown"
}

// Value is a literal held in a Program's literal pool. The concrete
// representation is a closed set of kinds; use the Make* constructors.
type Value interface {
	Kind() Kind
	String() string
}

type (
	unknownVal struct{}
	booleanVal bool
	stringVal  string
	intVal     int64
	floatVal   float64
)

func (unknownVal) Kind() Kind { return Unknown }
func (booleanVal) Kind() Kind { return Boolean }
func (stringVal) Kind() Kind  { return String }
func (intVal) Kind() Kind     { return Int }
func (floatVal) Kind() Kind   { return Float }

func (unknownVal) String() string   { return "<unknown>" }
func (b booleanVal) String() string { return strconv.FormatBool(bool(b)) }
func (s stringVal) String() string  { return string(s) }
func (i intVal) String() string     { return strconv.FormatInt(int64(i), 10) }
func (f floatVal) String() string   { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func MakeUnknown() Value        { return unknownVal{} }
func MakeBoolean(b bool) Value  { return booleanVal(b) }
func MakeString(s string) Value { return stringVal(s) }
func MakeInt(i int64) Value     { return intVal(i) }
func MakeFloat(f float64) Value { return floatVal(f) }

// MakeFromToken converts a literal token into the Value it denotes. Tokens
// that do not denote a literal produce an Unknown value.
func MakeFromToken(tok parse.Token) Value {
	switch tok.Type {
	case scanner.TOK_INTEGER:
		// Integer lexemes are plain digit runs; base 10 keeps a leading
		// zero from triggering octal rules.
		if x, err := strconv.ParseInt(tok.Lexeme, 10, 64); err == nil {
			return MakeInt(x)
		}
	case scanner.TOK_FLOAT:
		if x, err := strconv.ParseFloat(tok.Lexeme, 64); err == nil {
			return MakeFloat(x)
		}
	case scanner.TOK_STRING:
		// Lexemes keep their surrounding quote runes
		return MakeString(tok.Lexeme[1 : len(tok.Lexeme)-1])
	case scanner.TOK_KEYWORD:
		switch tok.Lexeme {
		case "true":
			return MakeBoolean(true)
		case "false":
			return MakeBoolean(false)
		}
	}

	return MakeUnknown()
}

func BoolVal(v Value) bool {
	switch x := v.(type) {
	case booleanVal:
		return bool(x)
	default:
		panic("Not a boolean")
	}
}

func IntVal(v Value) int64 {
	switch x := v.(type) {
	case intVal:
		return int64(x)
	default:
		panic("Not an int")
	}
}

func FloatVal(v Value) float64 {
	switch x := v.(type) {
	case floatVal:
		return float64(x)
	case intVal:
		return float64(x)
	default:
		panic("Not a float")
	}
}

func StringVal(v Value) string {
	switch x := v.(type) {
	case stringVal:
		return string(x)
	default:
		panic("Not a string")
	}
}

// numeric reports whether v supports arithmetic.
func numeric(v Value) bool {
	return v.Kind() == Int || v.Kind() == Float
}

// BinaryOp applies a binary operator opcode to two operand values, with the
// left operand first. Ints promote to floats when the kinds are mixed.
func BinaryOp(op Opcode, left, right Value) (Value, error) {
	switch op {
	case OP_EQUAL:
		return MakeBoolean(equal(left, right)), nil
	case OP_NOT_EQUAL:
		return MakeBoolean(!equal(left, right)), nil
	}

	if !numeric(left) || !numeric(right) {
		return nil, fmt.Errorf("operator %s requires numeric operands, got %s and %s",
			op.ToString(), left.Kind().ToString(), right.Kind().ToString())
	}

	if left.Kind() == Int && right.Kind() == Int {
		a, b := IntVal(left), IntVal(right)

		switch op {
		case OP_ADD:
			return MakeInt(a + b), nil
		case OP_SUBTRACT:
			return MakeInt(a - b), nil
		case OP_MULTIPLY:
			return MakeInt(a * b), nil
		case OP_DIVIDE:
			if b == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return MakeInt(a / b), nil
		case OP_LESS:
			return MakeBoolean(a < b), nil
		case OP_LESS_EQ:
			return MakeBoolean(a <= b), nil
		case OP_GREATER:
			return MakeBoolean(a > b), nil
		case OP_GREATER_EQ:
			return MakeBoolean(a >= b), nil
		}
	} else {
		a, b := FloatVal(left), FloatVal(right)

		switch op {
		case OP_ADD:
			return MakeFloat(a + b), nil
		case OP_SUBTRACT:
			return MakeFloat(a - b), nil
		case OP_MULTIPLY:
			return MakeFloat(a * b), nil
		case OP_DIVIDE:
			if b == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return MakeFloat(a / b), nil
		case OP_LESS:
			return MakeBoolean(a < b), nil
		case OP_LESS_EQ:
			return MakeBoolean(a <= b), nil
		case OP_GREATER:
			return MakeBoolean(a > b), nil
		case OP_GREATER_EQ:
			return MakeBoolean(a >= b), nil
		}
	}

	return nil, fmt.Errorf("%s is not a binary operator", op.ToString())
}

// UnaryOp applies a unary operator opcode to a single operand value.
func UnaryOp(op Opcode, operand Value) (Value, error) {
	switch op {
	case OP_NEGATE:
		switch operand.Kind() {
		case Int:
			return MakeInt(-IntVal(operand)), nil
		case Float:
			return MakeFloat(-FloatVal(operand)), nil
		}
		return nil, fmt.Errorf("operator OP_NEGATE requires a numeric operand, got %s",
			operand.Kind().ToString())
	case OP_NOT:
		if operand.Kind() != Boolean {
			return nil, fmt.Errorf("operator OP_NOT requires a boolean operand, got %s",
				operand.Kind().ToString())
		}
		return MakeBoolean(!BoolVal(operand)), nil
	}

	return nil, fmt.Errorf("%s is not a unary operator", op.ToString())
}

func equal(left, right Value) bool {
	if numeric(left) && numeric(right) {
		if left.Kind() == Int && right.Kind() == Int {
			return IntVal(left) == IntVal(right)
		}
		return FloatVal(left) == FloatVal(right)
	}

	if left.Kind() != right.Kind() {
		return false
	}

	return left == right
}
