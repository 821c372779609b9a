// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package alu implements a 16 bits ALU from the parts of packages gate and
// arith.
//
// The ALU computes one of several functions of its x and y inputs, selected by
// 6 control bits:
//
//	zx: zero the x input
//	nx: negate the x input (after zx)
//	zy: zero the y input
//	ny: negate the y input (after zy)
//	f:  0 for x & y, 1 for x + y
//	no: negate the output
//
// It also reports whether the output is zero (zr) or negative (ng).
//
package alu

import (
	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/arith"
	"github.com/db47h/nandsim/gate"
)

// Result is the output of the ALU.
//
type Result struct {
	Out nandsim.Word
	ZR  bool // Out == 0
	NG  bool // Out < 0
}

// A Probe observes the output of the function stage (x & y or x + y) before
// the optional output negation. It must not retain or modify anything
// reachable from the ALU.
//
type Probe func(c Control, combined nandsim.Word)

// Unit is an ALU with an optional probe.
// The zero value is a ready to use ALU with no probe.
//
type Unit struct {
	Probe Probe
}

// Compute returns the ALU output for inputs x, y and control bits c.
//
//	Inputs: x[16], y[16], zx, nx, zy, ny, f, no
//	Outputs: out[16], zr, ng
//
func (u Unit) Compute(x, y nandsim.Word, c Control) Result {
	x = preset(x, c.ZX, c.NX)
	y = preset(y, c.ZY, c.NY)

	r := gate.Mux16(gate.And16(x, y), arith.Add16(x, y), c.F)
	if u.Probe != nil {
		u.Probe(c, r)
	}

	out := gate.Mux16(r, gate.Not16(r), c.NO)
	return Result{
		Out: out,
		ZR:  gate.Not(gate.Or(gate.Or8Way(lo(out)), gate.Or8Way(hi(out)))),
		NG:  out[nandsim.WordSize-1],
	}
}

// Compute returns the ALU output for inputs x, y and control bits c.
//
func Compute(x, y nandsim.Word, c Control) Result {
	return Unit{}.Compute(x, y, c)
}

// ALU is the pin level form of Compute.
//
func ALU(x, y nandsim.Word, zx, nx, zy, ny, f, no bool) (out nandsim.Word, zr, ng bool) {
	r := Compute(x, y, Control{ZX: zx, NX: nx, ZY: zy, NY: ny, F: f, NO: no})
	return r.Out, r.ZR, r.NG
}

// preset applies the zero then negate stage to an input.
func preset(in nandsim.Word, z, n bool) nandsim.Word {
	in = gate.Mux16(in, nandsim.Zero, z)
	return gate.Mux16(in, gate.Not16(in), n)
}

func lo(w nandsim.Word) (b [8]bool) {
	copy(b[:], w[:8])
	return
}

func hi(w nandsim.Word) (b [8]bool) {
	copy(b[:], w[8:])
	return
}
