// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gate provides the logic gates of the simulator.
//
// Nand is the only primitive. Every other gate is a composition of Nand
// gates, or a replication of such a composition over the bits of a
// nandsim.Word.
//
package gate

// Nand returns a NAND gate output.
//
//	Inputs: a, b
//	Function: out = !(a && b)
//
func Nand(a, b bool) bool {
	return !(a && b)
}

// Not returns a NOT gate output.
//
//	Inputs: in
//	Function: out = Nand(in, in)
//
func Not(in bool) bool {
	return Nand(in, in)
}

// And returns a AND gate output.
//
//	Inputs: a, b
//	Function: out = Not(Nand(a, b))
//
func And(a, b bool) bool {
	return Not(Nand(a, b))
}

// Or returns a OR gate output.
//
//	Inputs: a, b
//	Function: out = Nand(Not(a), Not(b))
//
func Or(a, b bool) bool {
	return Nand(Not(a), Not(b))
}

// Xor returns a XOR gate output.
//
//	Inputs: a, b
//	Function: out = Or(And(a, Not(b)), And(Not(a), b))
//
func Xor(a, b bool) bool {
	return Or(And(a, Not(b)), And(Not(a), b))
}

// Or8Way returns the OR of 8 inputs.
//
//	Inputs: in[8]
//	Function: out = in[0] || in[1] || ... || in[7]
//
func Or8Way(in [8]bool) bool {
	out := false
	for _, b := range in {
		out = Or(out, b)
	}
	return out
}
