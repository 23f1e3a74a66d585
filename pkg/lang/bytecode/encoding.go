/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package bytecode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Wire format: a tagged-record encoding of a Program.
//
//	program  = instr-count *instruction literal-count *literal
//	instruction = OPCODE [ literal-index ]
//	literal  = KIND ( BOOL / varint / float64-bits / length-prefixed string )
//
// Counts, indices and ints are unsigned/signed varints; floats are IEEE-754
// bits in big-endian order.

// Marshal encodes the program for persistence or transmission.
func (p *Program) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)

	writeUvarint(buf, uint64(len(p.Instructions)))
	for _, inst := range p.Instructions {
		buf.WriteByte(byte(inst.Op))
		if inst.Op.HasOperand() {
			writeUvarint(buf, uint64(inst.Arg))
		}
	}

	writeUvarint(buf, uint64(len(p.Literals)))
	for _, lit := range p.Literals {
		buf.WriteByte(byte(lit.Kind()))

		switch lit.Kind() {
		case Boolean:
			if BoolVal(lit) {
				buf.WriteByte(1)
			} else {
				buf.WriteByte(0)
			}
		case Int:
			var scratch [binary.MaxVarintLen64]byte
			n := binary.PutVarint(scratch[:], IntVal(lit))
			buf.Write(scratch[:n])
		case Float:
			var bits [8]byte
			binary.BigEndian.PutUint64(bits[:], math.Float64bits(FloatVal(lit)))
			buf.Write(bits[:])
		case String:
			s := StringVal(lit)
			writeUvarint(buf, uint64(len(s)))
			buf.WriteString(s)
		default:
			return nil, fmt.Errorf("cannot encode literal of kind %s", lit.Kind().ToString())
		}
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a program previously encoded with Marshal.
func (p *Program) Unmarshal(b []byte) error {
	buf := bytes.NewReader(b)

	instructionCount, err := binary.ReadUvarint(buf)
	if err != nil {
		return errors.Wrap(err, "reading instruction count")
	}

	p.Instructions = make([]Instruction, 0, instructionCount)
	for i := uint64(0); i < instructionCount; i++ {
		opByte, err := buf.ReadByte()
		if err != nil {
			return errors.Wrap(err, "reading opcode")
		}

		inst := Instruction{Op: Opcode(opByte)}
		if inst.Op.HasOperand() {
			arg, err := binary.ReadUvarint(buf)
			if err != nil {
				return errors.Wrap(err, "reading literal index")
			}
			inst.Arg = int(arg)
		}

		p.Instructions = append(p.Instructions, inst)
	}

	literalCount, err := binary.ReadUvarint(buf)
	if err != nil {
		return errors.Wrap(err, "reading literal count")
	}

	p.Literals = make([]Value, 0, literalCount)
	for i := uint64(0); i < literalCount; i++ {
		kindByte, err := buf.ReadByte()
		if err != nil {
			return errors.Wrap(err, "reading literal kind")
		}

		switch Kind(kindByte) {
		case Boolean:
			v, err := buf.ReadByte()
			if err != nil {
				return errors.Wrap(err, "reading boolean literal")
			}
			p.Literals = append(p.Literals, MakeBoolean(v != 0))
		case Int:
			v, err := binary.ReadVarint(buf)
			if err != nil {
				return errors.Wrap(err, "reading int literal")
			}
			p.Literals = append(p.Literals, MakeInt(v))
		case Float:
			var bits [8]byte
			if _, err := io.ReadFull(buf, bits[:]); err != nil {
				return errors.Wrap(err, "reading float literal")
			}
			p.Literals = append(p.Literals, MakeFloat(math.Float64frombits(binary.BigEndian.Uint64(bits[:]))))
		case String:
			length, err := binary.ReadUvarint(buf)
			if err != nil {
				return errors.Wrap(err, "reading string length")
			}
			s := make([]byte, length)
			if _, err := io.ReadFull(buf, s); err != nil {
				return errors.Wrap(err, "reading string literal")
			}
			p.Literals = append(p.Literals, MakeString(string(s)))
		default:
			return fmt.Errorf("cannot decode literal of kind %d", kindByte)
		}
	}

	// A decoded program must uphold the same operand invariant a parse
	// provides.
	for _, inst := range p.Instructions {
		if !inst.Op.HasOperand() {
			continue
		}

		if inst.Arg >= len(p.Literals) {
			return fmt.Errorf("instruction %s references literal %d of %d",
				inst.Op.ToString(), inst.Arg, len(p.Literals))
		}

		// Name slots must hold the name itself
		if inst.Op == OP_LOAD_NAME && p.Literals[inst.Arg].Kind() != String {
			return fmt.Errorf("instruction OP_LOAD_NAME references a %s literal, wanted a string",
				p.Literals[inst.Arg].Kind().ToString())
		}
	}

	return nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], v)
	buf.Write(scratch[:n])
}
