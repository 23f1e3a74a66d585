/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/ember-lang/ember/pkg/lang/bytecode"
	"github.com/ember-lang/ember/pkg/lang/scanner"
)

func compile(t *testing.T, input string) *bytecode.Program {
	t.Helper()

	prog, err := Parse(scanner.Scan(input), input)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %s", input, err)
	}

	return prog
}

func opcodes(prog *bytecode.Program) []bytecode.Opcode {
	ops := []bytecode.Opcode{}
	for _, inst := range prog.Instructions {
		ops = append(ops, inst.Op)
	}
	return ops
}

func expectOpcodes(t *testing.T, input string, want []bytecode.Opcode) {
	t.Helper()

	got := opcodes(compile(t, input))
	if len(got) != len(want) {
		t.Fatalf("%q: wanted %d instructions, got %d", input, len(want), len(got))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%q: instruction %d is %s, wanted %s", input, i, got[i].ToString(), want[i].ToString())
		}
	}
}

func TestLeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 must compile as (1 - 2) - 3: subtract, push, subtract
	expectOpcodes(t, "1 - 2 - 3", []bytecode.Opcode{
		bytecode.OP_CONSTANT,
		bytecode.OP_CONSTANT,
		bytecode.OP_SUBTRACT,
		bytecode.OP_CONSTANT,
		bytecode.OP_SUBTRACT,
	})
}

func TestPrecedence(t *testing.T) {
	// 1 + 2 * 3 must compile as 1 + (2 * 3): the multiply comes first
	expectOpcodes(t, "1 + 2 * 3", []bytecode.Opcode{
		bytecode.OP_CONSTANT,
		bytecode.OP_CONSTANT,
		bytecode.OP_CONSTANT,
		bytecode.OP_MULTIPLY,
		bytecode.OP_ADD,
	})

	expectOpcodes(t, "1 * 2 < 3 + 4", []bytecode.Opcode{
		bytecode.OP_CONSTANT,
		bytecode.OP_CONSTANT,
		bytecode.OP_MULTIPLY,
		bytecode.OP_CONSTANT,
		bytecode.OP_CONSTANT,
		bytecode.OP_ADD,
		bytecode.OP_LESS,
	})
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	expectOpcodes(t, "(1 + 2) * 3", []bytecode.Opcode{
		bytecode.OP_CONSTANT,
		bytecode.OP_CONSTANT,
		bytecode.OP_ADD,
		bytecode.OP_CONSTANT,
		bytecode.OP_MULTIPLY,
	})
}

func TestNestedUnary(t *testing.T) {
	expectOpcodes(t, "--5", []bytecode.Opcode{
		bytecode.OP_CONSTANT,
		bytecode.OP_NEGATE,
		bytecode.OP_NEGATE,
	})

	expectOpcodes(t, "!!true", []bytecode.Opcode{
		bytecode.OP_CONSTANT,
		bytecode.OP_NOT,
		bytecode.OP_NOT,
	})
}

func TestOperandIndicesValid(t *testing.T) {
	prog := compile(t, "1 + foo * (2.5 == 'bar')")

	for i, inst := range prog.Instructions {
		if inst.Op.HasOperand() && inst.Arg >= len(prog.Literals) {
			t.Errorf("instruction %d references literal %d, pool has %d", i, inst.Arg, len(prog.Literals))
		}
	}
}

func TestLiteralsNotDeduplicated(t *testing.T) {
	prog := compile(t, "5 + 5")

	if len(prog.Literals) != 2 {
		t.Errorf("wanted one pool slot per occurrence, got %d slots", len(prog.Literals))
	}
}

func TestUnbalancedParen(t *testing.T) {
	_, err := Parse(scanner.Scan("(1 + 2"), "(1 + 2")

	if err == nil {
		t.Fatal("expected a parse error")
	}

	if !strings.Contains(err.Error(), "closing parenthesis") {
		t.Errorf("wanted a closing parenthesis error, got: %s", err)
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := Parse(scanner.Scan(""), "")

	if err == nil {
		t.Fatal("expected a parse error")
	}

	if !strings.Contains(err.Error(), "expected expression") {
		t.Errorf("wanted an expected-expression error, got: %s", err)
	}
}

func TestTrailingTokens(t *testing.T) {
	_, err := Parse(scanner.Scan("1 + 2 3"), "1 + 2 3")

	if err == nil {
		t.Fatal("expected a parse error")
	}

	if !strings.Contains(err.Error(), "expected end of input") {
		t.Errorf("wanted an end-of-input error, got: %s", err)
	}
}

func TestMissingEOFIsContractViolation(t *testing.T) {
	_, err := Parse(nil, "")
	if err == nil {
		t.Error("expected an error for an empty token sequence")
	}
}

func TestParse(t *testing.T) {
	testDirectory, err := filepath.Abs("../../../test/parsing/expr")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			file, err := os.Open(test)
			if err != nil {
				t.Errorf("Error opening test: %s", test)
			}

			lines := bufio.NewScanner(file)

			shouldPass := false
			lines.Scan()
			if strings.ToUpper(lines.Text()) == "PASS" {
				shouldPass = true
			}

			actual := ""
			for lines.Scan() {
				input := lines.Text()
				if input == "" {
					continue
				}

				prog, err := Parse(scanner.Scan(input), input)
				if shouldPass && err != nil {
					t.Error(err)
					continue
				}
				if !shouldPass && err == nil {
					t.Errorf("Expected expression to fail: %s", input)
					continue
				}

				if shouldPass {
					actual += prog.Dump()
				}
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}
