// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"log/slog"

	"github.com/pkg/errors"
)

// A Component is an element of a circuit updated once per simulation step.
// clk is the current level of the clock signal.
//
// Components that hold state, like the registers of package seq, are
// typically wrapped in a closure:
//
//	var r seq.Register
//	count := func(clk bool) error {
//		return r.Update(arith.Inc16(r.Out()), true, clk)
//	}
//
type Component func(clk bool) error

// Circuit is a clock driver for a set of components.
//
// Components are updated serially, in the order given to NewCircuit, on
// every step of the simulation. The clock signal is high during the first
// step of each clock cycle only, so that clocked components capture their
// input exactly once per cycle.
//
type Circuit struct {
	// Log receives debug traces. If nil, nothing is logged.
	Log *slog.Logger

	cs   []Component
	tpc  uint // steps per clock cycle
	tick uint
	err  error
}

// NewCircuit returns a new circuit driving the given components.
//
// stepsPerCycle indicates how many simulation steps to run per clock cycle.
// It is rounded up to the next power of two, with a minimum of 2.
//
func NewCircuit(stepsPerCycle uint, cs ...Component) (*Circuit, error) {
	if len(cs) == 0 {
		return nil, errors.New("empty component list")
	}
	for i, f := range cs {
		if f == nil {
			return nil, errors.Errorf("component %d is nil", i)
		}
	}

	if stepsPerCycle < 2 {
		stepsPerCycle = 2
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle |= stepsPerCycle >> 32
	stepsPerCycle++

	return &Circuit{cs: cs, tpc: stepsPerCycle}, nil
}

func (c *Circuit) log() *slog.Logger {
	if c.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Log
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint {
	return c.tick
}

// SPC returns the stepsPerCycle value.
//
func (c *Circuit) SPC() uint {
	return c.tpc
}

// AtTick returns true if the current step is at the beginning of a clock cycle
// (raising edge of the clock).
//
func (c *Circuit) AtTick() bool {
	return c.Steps()&(c.SPC()-1) == 0
}

// AtTock returns true if the current step is at the beginning of the second
// half of a clock cycle.
//
func (c *Circuit) AtTock() bool {
	return (c.Steps()+c.SPC()/2)&(c.SPC()-1) == 0
}

// Err returns the error that halted the circuit, if any.
//
func (c *Circuit) Err() error {
	return c.err
}

// Step advances the simulation by one step.
//
// If a component returns an error, the remaining components are not updated,
// the step counter is not advanced and the circuit halts: Step returns the
// same error on every subsequent call.
//
func (c *Circuit) Step() error {
	if c.err != nil {
		return c.err
	}
	clk := c.AtTick()
	for i, f := range c.cs {
		if err := f(clk); err != nil {
			c.err = errors.Wrapf(err, "step %d: component %d", c.tick, i)
			c.log().Debug("circuit halted", "step", c.tick, "component", i, "clk", clk, "err", err)
			return c.err
		}
	}
	c.tick++
	return nil
}

// Tick runs the simulation until the beginning of the next half clock cycle.
//
func (c *Circuit) Tick() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
		if c.AtTock() {
			return nil
		}
	}
}

// Tock runs the simulation until the beginning of the next clock cycle.
// Once Tock returns, the output of clocked components has stabilized.
//
func (c *Circuit) Tock() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
		if c.AtTick() {
			return nil
		}
	}
}

// TickTock runs the simulation for a whole clock cycle.
//
func (c *Circuit) TickTock() error {
	if err := c.Tick(); err != nil {
		return err
	}
	return c.Tock()
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }
