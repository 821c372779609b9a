// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package seq provides the sequential parts of the simulator: the SR latch, the
// D flip-flop built on it, and the 1 bit and 16 bits registers built on the
// flip-flop.
//
// Parts hold their state in their own value and are updated by explicit calls
// that take the clock level as an input. The zero value of each part is ready
// to use and stores 0. A part must not be updated concurrently.
//
package seq

import "github.com/pkg/errors"

// ErrIllegalState is returned when both the set and reset inputs of an SR
// latch are high.
//
var ErrIllegalState = errors.New("illegal latch state: set and reset both high")

// SRLatch is a set-reset latch.
//
type SRLatch struct {
	q bool
}

// Update updates the latch state.
//
//	Inputs: s, r
//	Function: s=1 r=0: q = 1
//	          s=0 r=1: q = 0
//	          s=0 r=0: q unchanged
//	          s=1 r=1: ErrIllegalState, q unchanged
//
func (l *SRLatch) Update(s, r bool) error {
	switch {
	case s && r:
		return errors.WithStack(ErrIllegalState)
	case s:
		l.q = true
	case r:
		l.q = false
	}
	return nil
}

// Q returns the stored bit.
//
func (l *SRLatch) Q() bool {
	return l.q
}
