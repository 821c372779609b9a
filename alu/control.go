// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alu

import (
	"strings"

	"github.com/pkg/errors"
)

// Control holds the ALU control bits.
//
type Control struct {
	ZX, NX bool
	ZY, NY bool
	F      bool
	NO     bool
}

// ErrUnknownFunction is returned by Lookup for names not found in Functions.
//
var ErrUnknownFunction = errors.New("unknown function")

func (c Control) pins() [6]bool {
	return [6]bool{c.ZX, c.NX, c.ZY, c.NY, c.F, c.NO}
}

// Bits returns the control bits packed in an uint8, zx being bit 5 and no
// bit 0.
//
func (c Control) Bits() uint8 {
	var b uint8
	for _, p := range c.pins() {
		b <<= 1
		if p {
			b |= 1
		}
	}
	return b
}

// ControlOf returns the Control for bits packed as returned by Control.Bits.
//
func ControlOf(b uint8) (Control, error) {
	if b > 0x3f {
		return Control{}, errors.Errorf("control bits %#x out of range", b)
	}
	bit := func(n uint) bool { return b&(1<<n) != 0 }
	return Control{
		ZX: bit(5), NX: bit(4),
		ZY: bit(3), NY: bit(2),
		F:  bit(1),
		NO: bit(0),
	}, nil
}

// ParseControl parses 6 binary digits in zx, nx, zy, ny, f, no order.
//
//	ParseControl("000010") // x+y
//
func ParseControl(s string) (Control, error) {
	if len(s) != 6 {
		return Control{}, errors.Errorf("in %q: expected 6 control bits", s)
	}
	var b uint8
	for i := 0; i < len(s); i++ {
		b <<= 1
		switch s[i] {
		case '1':
			b |= 1
		case '0':
		default:
			return Control{}, errors.Errorf("in %q at pos %d: expected binary digit", s, i+1)
		}
	}
	return ControlOf(b)
}

// String returns the control bits in zx, nx, zy, ny, f, no order.
//
func (c Control) String() string {
	var b [6]byte
	for i, p := range c.pins() {
		if p {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b[:])
}

// Name returns the name of the function computed with c or "" if c is not
// listed in Functions.
//
func (c Control) Name() string {
	for _, f := range Functions {
		if f.Control == c {
			return f.Name
		}
	}
	return ""
}

// Function is a named ALU function.
//
type Function struct {
	Name    string
	Control Control
}

func ctl(s string) Control {
	c, err := ParseControl(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Functions lists the functions of the ALU with their control bits.
//
var Functions = []Function{
	{"0", ctl("101010")},
	{"1", ctl("111111")},
	{"-1", ctl("111010")},
	{"x", ctl("001100")},
	{"y", ctl("110000")},
	{"!x", ctl("001101")},
	{"!y", ctl("110001")},
	{"-x", ctl("001111")},
	{"-y", ctl("110011")},
	{"x+1", ctl("011111")},
	{"y+1", ctl("110111")},
	{"x-1", ctl("001110")},
	{"y-1", ctl("110010")},
	{"x+y", ctl("000010")},
	{"x-y", ctl("010011")},
	{"y-x", ctl("000111")},
	{"x&y", ctl("000000")},
	{"x|y", ctl("010101")},
}

// Lookup returns the control bits for the named function. Names are case
// insensitive and may contain spaces: "X + Y" is the same as "x+y".
//
func Lookup(name string) (Control, error) {
	n := strings.ToLower(strings.Join(strings.Fields(name), ""))
	for _, f := range Functions {
		if f.Name == n {
			return f.Control, nil
		}
	}
	return Control{}, errors.Wrapf(ErrUnknownFunction, "%q", name)
}
