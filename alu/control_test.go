package alu_test

import (
	"testing"

	"github.com/db47h/nandsim/alu"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseControl(t *testing.T) {
	assert := assert.New(t)

	c, err := alu.ParseControl("101010")
	assert.NoError(err)
	assert.Equal(alu.Control{ZX: true, ZY: true, F: true}, c)
	assert.Equal("101010", c.String())
	assert.Equal(uint8(0x2a), c.Bits())
	assert.Equal("0", c.Name())

	for _, s := range []string{"", "10101", "1010100", "10101x", " 10101"} {
		_, err := alu.ParseControl(s)
		assert.Error(err, s)
	}
}

func TestControlOf(t *testing.T) {
	assert := assert.New(t)

	for b := 0; b < 64; b++ {
		c, err := alu.ControlOf(uint8(b))
		assert.NoError(err)
		assert.Equal(uint8(b), c.Bits())
		p, err := alu.ParseControl(c.String())
		assert.NoError(err)
		assert.Equal(c, p)
	}
	_, err := alu.ControlOf(0x40)
	assert.Error(err)
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	for _, f := range alu.Functions {
		c, err := alu.Lookup(f.Name)
		assert.NoError(err)
		assert.Equal(f.Control, c)
		assert.Equal(f.Name, c.Name())
	}

	c, err := alu.Lookup(" X + Y ")
	assert.NoError(err)
	assert.Equal("000010", c.String())

	_, err = alu.Lookup("x*y")
	assert.True(errors.Is(err, alu.ErrUnknownFunction))
	assert.Contains(err.Error(), `"x*y"`)

	// 111011 is not one of the listed functions; it computes !(-1 + 0) = 0.
	c, err = alu.ParseControl("111011")
	assert.NoError(err)
	assert.Equal("", c.Name())
}
