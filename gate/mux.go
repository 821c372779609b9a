// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gate

import "github.com/db47h/nandsim"

// Mux returns a multiplexer output.
//
//	Inputs: a, b, sel
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel bool) bool {
	return Or(And(Not(sel), a), And(sel, b))
}

// DMux returns a demultiplexer outputs.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel bool) (a, b bool) {
	return And(Not(sel), in), And(sel, in)
}

// Mux16 returns a 16-bits Mux output.
//
//	Inputs: a[16], b[16], sel
//	Function: for i := range out { out[i] = Mux(a[i], b[i], sel) }
//
func Mux16(a, b nandsim.Word, sel bool) nandsim.Word {
	var out nandsim.Word
	for i := range out {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Mux4Way16 returns the output of a 4 ways 16-bits Mux.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Function: out = [a, b, c, d][sel]
//
// sel[0] selects within the (a, b) and (c, d) pairs, sel[1] between pairs.
//
func Mux4Way16(a, b, c, d nandsim.Word, sel [2]bool) nandsim.Word {
	ab := Mux16(a, b, sel[0])
	cd := Mux16(c, d, sel[0])
	return Mux16(ab, cd, sel[1])
}

// Mux8Way16 returns the output of a 8 ways 16-bits Mux.
//
//	Inputs: a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]
//	Function: out = [a, b, c, d, e, f, g, h][sel]
//
func Mux8Way16(a, b, c, d, e, f, g, h nandsim.Word, sel [3]bool) nandsim.Word {
	abcd := Mux4Way16(a, b, c, d, [2]bool{sel[0], sel[1]})
	efgh := Mux4Way16(e, f, g, h, [2]bool{sel[0], sel[1]})
	return Mux16(abcd, efgh, sel[2])
}

// DMux4Way returns the outputs of a 4 ways demultiplexer.
//
//	Inputs: in, sel[2]
//	Outputs: a, b, c, d
//	Function: [a, b, c, d][sel] = in, all other outputs are 0
//
// sel[1] splits at the root, sel[0] at the leaves, mirroring Mux4Way16.
//
func DMux4Way(in bool, sel [2]bool) (a, b, c, d bool) {
	ab, cd := DMux(in, sel[1])
	a, b = DMux(ab, sel[0])
	c, d = DMux(cd, sel[0])
	return
}

// DMux8Way returns the outputs of a 8 ways demultiplexer.
//
//	Inputs: in, sel[3]
//	Outputs: a, b, c, d, e, f, g, h
//	Function: [a, b, c, d, e, f, g, h][sel] = in, all other outputs are 0
//
func DMux8Way(in bool, sel [3]bool) (a, b, c, d, e, f, g, h bool) {
	ae, bf, cg, dh := DMux4Way(in, [2]bool{sel[0], sel[1]})
	a, e = DMux(ae, sel[2])
	b, f = DMux(bf, sel[2])
	c, g = DMux(cg, sel[2])
	d, h = DMux(dh, sel[2])
	return
}

// Sel2 returns the 2 bits selector for index i. Bit 0 of i is sel[0].
//
func Sel2(i int) [2]bool {
	return [2]bool{i&1 != 0, i&2 != 0}
}

// Sel3 returns the 3 bits selector for index i. Bit 0 of i is sel[0].
//
func Sel3(i int) [3]bool {
	return [3]bool{i&1 != 0, i&2 != 0, i&4 != 0}
}
