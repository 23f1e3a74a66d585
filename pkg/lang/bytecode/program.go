/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package bytecode

import (
	"fmt"
	"strings"
)

// Instruction is one step of a compiled program. Arg indexes into the
// owning Program's literal pool, and is meaningful only when
// Op.HasOperand() is true.
type Instruction struct {
	Op  Opcode
	Arg int
}

// Program is the executable output of a parse: a flat instruction sequence
// in stack-machine order, plus the literal pool those instructions
// reference. Both are append-only while parsing and immutable afterwards.
type Program struct {
	Instructions []Instruction
	Literals     []Value
}

// AddLiteral appends v to the literal pool and returns its index. Repeated
// literals are not deduplicated; each occurrence gets its own slot.
func (p *Program) AddLiteral(v Value) int {
	p.Literals = append(p.Literals, v)
	return len(p.Literals) - 1
}

// Emit appends an instruction with no operand.
func (p *Program) Emit(op Opcode) {
	p.Instructions = append(p.Instructions, Instruction{Op: op})
}

// EmitOperand appends an instruction referencing literal pool slot arg.
func (p *Program) EmitOperand(op Opcode, arg int) {
	p.Instructions = append(p.Instructions, Instruction{Op: op, Arg: arg})
}

// Dump renders a human-readable disassembly of the program, one
// instruction per line followed by the literal pool.
func (p *Program) Dump() string {
	var b strings.Builder

	for i, inst := range p.Instructions {
		if inst.Op.HasOperand() {
			fmt.Fprintf(&b, "%04d %-14s %d (%s)\n", i, inst.Op.ToString(), inst.Arg, p.Literals[inst.Arg].String())
		} else {
			fmt.Fprintf(&b, "%04d %s\n", i, inst.Op.ToString())
		}
	}

	fmt.Fprintf(&b, "literals: %d\n", len(p.Literals))
	for i, lit := range p.Literals {
		fmt.Fprintf(&b, "%04d %-8s %s\n", i, lit.Kind().ToString(), lit.String())
	}

	return b.String()
}
