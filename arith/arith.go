// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package arith provides adders built from the gates of package gate.
//
package arith

import (
	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/gate"
)

// HalfAdder returns the outputs of a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(a, b bool) (s, c bool) {
	return gate.Xor(a, b), gate.And(a, b)
}

// FullAdder returns the outputs of a 3 bits adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(a, b, cin bool) (s, cout bool) {
	s0, c0 := HalfAdder(a, b)
	s, c1 := HalfAdder(s0, cin)
	return s, gate.Or(c0, c1)
}

// AddCarry16 returns the sum of a and b and the carry out of bit 15.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16], c
//
func AddCarry16(a, b nandsim.Word) (out nandsim.Word, c bool) {
	out[0], c = HalfAdder(a[0], b[0])
	for i := 1; i < len(out); i++ {
		out[i], c = FullAdder(a[i], b[i], c)
	}
	return out, c
}

// Add16 returns the sum of a and b, modulo 2^16.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//
func Add16(a, b nandsim.Word) nandsim.Word {
	out, _ := AddCarry16(a, b)
	return out
}

var one = nandsim.WordOf(1)

// Inc16 returns in + 1, modulo 2^16.
//
func Inc16(in nandsim.Word) nandsim.Word {
	return Add16(in, one)
}
