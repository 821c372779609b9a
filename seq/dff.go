// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package seq

import (
	"github.com/db47h/nandsim/gate"
	"github.com/pkg/errors"
)

// DFF is a clocked data flip flop.
//
type DFF struct {
	q     bool
	latch SRLatch
}

// Reset forces the stored bit to v, bypassing the clock.
// It is meant for initialization, not for normal operation.
//
func (d *DFF) Reset(v bool) {
	d.q = v
	d.latch.q = v
}

// Update captures in when clk is high and holds the stored bit otherwise.
//
//	Inputs: in, clk
//	Function: s = And(in, clk)
//	          r = And(Not(in), clk)
//	          out = SRLatch(s, r)
//
func (d *DFF) Update(in, clk bool) error {
	s := gate.And(in, clk)
	r := gate.And(gate.Not(in), clk)
	if err := d.latch.Update(s, r); err != nil {
		return errors.Wrap(err, "dff")
	}
	d.q = d.latch.Q()
	return nil
}

// Out returns the stored bit.
//
func (d *DFF) Out() bool {
	return d.q
}

// NotOut returns the complement of the stored bit.
//
func (d *DFF) NotOut() bool {
	return gate.Not(d.q)
}
