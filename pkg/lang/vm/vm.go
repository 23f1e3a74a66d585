/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package vm

import (
	"fmt"

	"github.com/ember-lang/ember/pkg/lang/bytecode"
)

// VM executes a compiled Program against an implicit value stack. Names
// resolves identifiers; it may be nil, in which case every OP_LOAD_NAME
// fails. A VM holds no state between Run calls.
type VM struct {
	Names map[string]bytecode.Value
}

// Run executes prog top-to-bottom and returns the single value it leaves
// on the stack.
func (m *VM) Run(prog *bytecode.Program) (bytecode.Value, error) {
	stack := make([]bytecode.Value, 0, len(prog.Instructions))

	push := func(v bytecode.Value) {
		stack = append(stack, v)
	}
	pop := func() bytecode.Value {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, inst := range prog.Instructions {
		switch inst.Op {
		case bytecode.OP_CONSTANT:
			push(prog.Literals[inst.Arg])
		case bytecode.OP_LOAD_NAME:
			name := bytecode.StringVal(prog.Literals[inst.Arg])
			v, ok := m.Names[name]
			if !ok {
				return nil, fmt.Errorf("undefined name '%s'", name)
			}
			push(v)
		case bytecode.OP_NEGATE, bytecode.OP_NOT:
			if len(stack) < 1 {
				return nil, fmt.Errorf("%s on an empty stack", inst.Op.ToString())
			}
			v, err := bytecode.UnaryOp(inst.Op, pop())
			if err != nil {
				return nil, err
			}
			push(v)
		default:
			if len(stack) < 2 {
				return nil, fmt.Errorf("%s needs two stacked values, have %d", inst.Op.ToString(), len(stack))
			}
			right := pop()
			left := pop()
			v, err := bytecode.BinaryOp(inst.Op, left, right)
			if err != nil {
				return nil, err
			}
			push(v)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("program left %d values on the stack, expected 1", len(stack))
	}

	return stack[0], nil
}
