// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package seq

import (
	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/gate"
	"github.com/pkg/errors"
)

// Bit is a 1 bit register.
//
type Bit struct {
	dff DFF
}

// Update updates the register.
//
//	Inputs: in, load, clk
//	Function: if load == 1 && clk == 1 { out = in }
//
// The flip-flop input is Mux(out, in, load): with load low, the register
// captures its own output.
//
func (b *Bit) Update(in, load, clk bool) error {
	return b.dff.Update(gate.Mux(b.dff.Out(), in, load), clk)
}

// Out returns the stored bit.
//
func (b *Bit) Out() bool {
	return b.dff.Out()
}

// Read returns the stored bit.
//
func (b *Bit) Read() bool {
	return b.dff.Out()
}

// Write sets the stored bit, bypassing the load and clock inputs.
// It is meant for initialization and debugging.
//
func (b *Bit) Write(v bool) {
	b.dff.Reset(v)
}

// Register is a 16 bits register.
//
type Register struct {
	bits [nandsim.WordSize]Bit
}

// Update updates all bits of the register with the same load and clk inputs.
//
//	Inputs: in[16], load, clk
//	Function: if load == 1 && clk == 1 { out = in }
//
func (r *Register) Update(in nandsim.Word, load, clk bool) error {
	for i := range r.bits {
		if err := r.bits[i].Update(in[i], load, clk); err != nil {
			return errors.Wrapf(err, "register bit %d", i)
		}
	}
	return nil
}

// Out returns the stored word.
//
func (r *Register) Out() nandsim.Word {
	var w nandsim.Word
	for i := range r.bits {
		w[i] = r.bits[i].Out()
	}
	return w
}

// Read returns bit i of the register. It panics if i is out of range.
//
func (r *Register) Read(i int) bool {
	return r.bits[i].Read()
}

// Write sets bit i of the register, bypassing the load and clock inputs. It
// panics if i is out of range.
//
func (r *Register) Write(i int, v bool) {
	r.bits[i].Write(v)
}

// Load sets all bits of the register, bypassing the load and clock inputs.
//
func (r *Register) Load(w nandsim.Word) {
	for i := range r.bits {
		r.bits[i].Write(w[i])
	}
}
