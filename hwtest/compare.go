// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing parts.
//
package hwtest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/nandsim"
)

// Iterations is the number of random inputs tried by the Compare functions,
// in addition to boundary values.
//
var Iterations = 1 << 12

var boundaries = []uint16{0, 1, 2, 0x7ffe, 0x7fff, 0x8000, 0x8001, 0xfffe, 0xffff}

func newRand(t testing.TB) *rand.Rand {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// CompareUnary compares the output of a 16 bits part with a reference function
// given the same inputs.
//
func CompareUnary(t testing.TB, name string, part func(in nandsim.Word) nandsim.Word, ref func(in uint16) uint16) {
	t.Helper()

	check := func(in uint16) {
		t.Helper()
		got := part(nandsim.WordOf(in))
		if exp := ref(in); got.Uint16() != exp {
			t.Fatalf("%s(%#04x): expected %#04x, got %#04x", name, in, exp, got.Uint16())
		}
	}

	for _, in := range boundaries {
		check(in)
	}
	r := newRand(t)
	for i := 0; i < Iterations; i++ {
		check(uint16(r.Uint32()))
	}
}

// CompareBinary compares the output of a 2 inputs 16 bits part with a
// reference function given the same inputs.
//
func CompareBinary(t testing.TB, name string, part func(a, b nandsim.Word) nandsim.Word, ref func(a, b uint16) uint16) {
	t.Helper()

	check := func(a, b uint16) {
		t.Helper()
		got := part(nandsim.WordOf(a), nandsim.WordOf(b))
		if exp := ref(a, b); got.Uint16() != exp {
			t.Fatalf("%s(%#04x, %#04x): expected %#04x, got %#04x", name, a, b, exp, got.Uint16())
		}
	}

	for _, a := range boundaries {
		for _, b := range boundaries {
			check(a, b)
		}
	}
	r := newRand(t)
	for i := 0; i < Iterations; i++ {
		check(uint16(r.Uint32()), uint16(r.Uint32()))
	}
}

// TruthTable checks a part with n inputs against the expected outputs for all
// 2^n input combinations. Inputs are enumerated in binary order, the first input
// being the msb: result[o][i] is the expected value of output o for
// combination i.
//
func TruthTable(t testing.TB, name string, n int, part func(in []bool) []bool, result [][]bool) {
	t.Helper()

	in := make([]bool, n)
	for i := 0; i < 1<<uint(n); i++ {
		for bit := range in {
			in[len(in)-bit-1] = i&(1<<uint(bit)) != 0
		}
		out := part(in)
		if len(out) != len(result) {
			t.Fatalf("%s: expected %d outputs, got %d", name, len(result), len(out))
		}
		for o := range out {
			if exp := result[o][i]; out[o] != exp {
				t.Errorf("%s %v: output %d = %v, got %v", name, in, o, exp, out[o])
			}
		}
	}
}
