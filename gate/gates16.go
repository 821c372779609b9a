// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gate

import "github.com/db47h/nandsim"

// Not16 returns a 16 bits NOT gate output.
//
//	Inputs: in[16]
//	Function: for i := range out { out[i] = Not(in[i]) }
//
func Not16(in nandsim.Word) nandsim.Word {
	var out nandsim.Word
	for i := range out {
		out[i] = Not(in[i])
	}
	return out
}

// And16 returns a 16 bits AND gate output.
//
//	Inputs: a[16], b[16]
//	Function: for i := range out { out[i] = And(a[i], b[i]) }
//
func And16(a, b nandsim.Word) nandsim.Word {
	var out nandsim.Word
	for i := range out {
		out[i] = And(a[i], b[i])
	}
	return out
}

// Or16 returns a 16 bits OR gate output.
//
//	Inputs: a[16], b[16]
//	Function: for i := range out { out[i] = Or(a[i], b[i]) }
//
func Or16(a, b nandsim.Word) nandsim.Word {
	var out nandsim.Word
	for i := range out {
		out[i] = Or(a[i], b[i])
	}
	return out
}
