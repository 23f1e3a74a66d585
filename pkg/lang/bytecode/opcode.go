/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package bytecode

type Opcode int

const (
	OP_CONSTANT Opcode = iota
	OP_LOAD_NAME

	OP_ADD
	OP_SUBTRACT
	OP_MULTIPLY
	OP_DIVIDE
	OP_NEGATE
	OP_NOT

	OP_EQUAL
	OP_NOT_EQUAL
	OP_LESS
	OP_LESS_EQ
	OP_GREATER
	OP_GREATER_EQ
)

func (o Opcode) ToString() string {
	switch o {
	case OP_CONSTANT:
		return "OP_CONSTANT"
	case OP_LOAD_NAME:
		return "OP_LOAD_NAME"
	case OP_ADD:
		return "OP_ADD"
	case OP_SUBTRACT:
		return "OP_SUBTRACT"
	case OP_MULTIPLY:
		return "OP_MULTIPLY"
	case OP_DIVIDE:
		return "OP_DIVIDE"
	case OP_NEGATE:
		return "OP_NEGATE"
	case OP_NOT:
		return "OP_NOT"
	case OP_EQUAL:
		return "OP_EQUAL"
	case OP_NOT_EQUAL:
		return "OP_NOT_EQUAL"
	case OP_LESS:
		return "OP_LESS"
	case OP_LESS_EQ:
		return "OP_LESS_EQ"
	case OP_GREATER:
		return "OP_GREATER"
	case OP_GREATER_EQ:
		return "OP_GREATER_EQ"
	}
	return "OP_UNKNOWN"
}

// HasOperand reports whether instructions carrying this opcode reference a
// slot in the literal pool.
func (o Opcode) HasOperand() bool {
	return o == OP_CONSTANT || o == OP_LOAD_NAME
}
