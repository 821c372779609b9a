package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	td := []struct {
		src  string
		vars map[string]int64
		v    int64
	}{
		{"5", nil, 5},
		{"0x7fff", nil, 0x7fff},
		{"-1", nil, -1},
		{"1 << 15", nil, 0x8000},
		{"x * 2 + 1", map[string]int64{"x": 20}, 41},
		{"x // 3", map[string]int64{"x": 10}, 3},
	}
	for _, d := range td {
		v, err := Eval(d.src, d.vars)
		if assert.NoError(err, d.src) {
			assert.Equal(d.v, v, d.src)
		}
	}

	for _, src := range []string{"", "1 +", "y", "'a'", "1 / 2", "1 << 70"} {
		_, err := Eval(src, nil)
		assert.Error(err, src)
	}
}

func TestWord(t *testing.T) {
	assert := assert.New(t)

	v, err := Word("-1", nil)
	assert.NoError(err)
	assert.Equal(uint16(0xffff), v)

	v, err = Word("0xffff", nil)
	assert.NoError(err)
	assert.Equal(uint16(0xffff), v)

	v, err = Word("-0x8000", nil)
	assert.NoError(err)
	assert.Equal(uint16(0x8000), v)

	_, err = Word("0x10000", nil)
	assert.Error(err)
	_, err = Word("-0x8001", nil)
	assert.Error(err)
}
