package nandsim_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/nandsim"
	"github.com/stretchr/testify/assert"
)

func TestWordOf(t *testing.T) {
	assert := assert.New(t)

	w := nandsim.WordOf(5)
	assert.True(w[0])
	assert.False(w[1])
	assert.True(w[2])
	assert.Equal(uint16(5), w.Uint16())
	assert.Equal("0000000000000101", w.String())

	assert.Equal(int16(-1), nandsim.Ones.Int16())
	assert.Equal(uint16(0), nandsim.Zero.Uint16())
	assert.True(nandsim.WordOf(0x8000)[15])
}

func TestParseWord(t *testing.T) {
	assert := assert.New(t)

	w, err := nandsim.ParseWord("0000_0000_0000_0101")
	assert.NoError(err)
	assert.Equal(nandsim.WordOf(5), w)

	for _, s := range []string{"", "0101", "00000000000001012", "00000000000000000", "000000000000000x"} {
		_, err := nandsim.ParseWord(s)
		assert.Error(err, s)
	}

	f := func(v uint16) bool {
		w := nandsim.WordOf(v)
		p, err := nandsim.ParseWord(w.String())
		return err == nil && p == w && p.Uint16() == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
