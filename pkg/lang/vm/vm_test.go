/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package vm

import (
	"testing"

	"github.com/ember-lang/ember/pkg/lang/bytecode"
	"github.com/ember-lang/ember/pkg/lang/parser"
	"github.com/ember-lang/ember/pkg/lang/scanner"
)

func run(t *testing.T, input string, names map[string]bytecode.Value) bytecode.Value {
	t.Helper()

	prog, err := parser.Parse(scanner.Scan(input), input)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %s", input, err)
	}

	machine := VM{Names: names}
	v, err := machine.Run(prog)
	if err != nil {
		t.Fatalf("unexpected runtime error for %q: %s", input, err)
	}

	return v
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		input string
		want  bytecode.Value
	}{
		{"1 + 2 * 3", bytecode.MakeInt(7)},
		{"(1 + 2) * 3", bytecode.MakeInt(9)},
		{"1 - 2 - 3", bytecode.MakeInt(-4)},
		{"-4 + 2", bytecode.MakeInt(-2)},
		{"1 / 2.0", bytecode.MakeFloat(0.5)},
		{"10 / 2 / 5", bytecode.MakeInt(1)},
	}

	for _, c := range cases {
		if got := run(t, c.input, nil); got != c.want {
			t.Errorf("%q = %s, wanted %s", c.input, got.String(), c.want.String())
		}
	}
}

func TestComparisons(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"1 < 2", true},
		{"2 <= 2", true},
		{"3 > 4", false},
		{"4 >= 4.0", true},
		{"1 + 2 == 3", true},
		{"'abc' == 'abc'", true},
		{"'abc' != 'abd'", true},
		{"!false", true},
		{"1 < 2 == true", true},
	}

	for _, c := range cases {
		got := run(t, c.input, nil)
		if bytecode.BoolVal(got) != c.want {
			t.Errorf("%q = %s, wanted %v", c.input, got.String(), c.want)
		}
	}
}

func TestNames(t *testing.T) {
	names := map[string]bytecode.Value{
		"x": bytecode.MakeInt(4),
		"y": bytecode.MakeFloat(0.5),
	}

	if got := run(t, "x * 2", names); got != bytecode.MakeInt(8) {
		t.Error("wanted 8, got", got.String())
	}

	if got := run(t, "x + y", names); got != bytecode.MakeFloat(4.5) {
		t.Error("wanted 4.5, got", got.String())
	}
}

func TestUndefinedName(t *testing.T) {
	prog, err := parser.Parse(scanner.Scan("nope + 1"), "nope + 1")
	if err != nil {
		t.Fatal(err)
	}

	machine := VM{}
	if _, err := machine.Run(prog); err == nil {
		t.Error("expected an undefined name error")
	}
}

func TestRuntimeTypeError(t *testing.T) {
	prog, err := parser.Parse(scanner.Scan("'a' + 1"), "'a' + 1")
	if err != nil {
		t.Fatal(err)
	}

	machine := VM{}
	if _, err := machine.Run(prog); err == nil {
		t.Error("expected a type error")
	}
}

func TestDivisionByZero(t *testing.T) {
	prog, err := parser.Parse(scanner.Scan("1 / 0"), "1 / 0")
	if err != nil {
		t.Fatal(err)
	}

	machine := VM{}
	if _, err := machine.Run(prog); err == nil {
		t.Error("expected a division by zero error")
	}
}
