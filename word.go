// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"strings"

	"github.com/pkg/errors"
)

// WordSize is the number of bits in a Word.
//
const WordSize = 16

// A Word is a 16 bits bus. Bit 0 is the lsb.
//
type Word [WordSize]bool

// Constant words.
//
var (
	Zero = Word{}
	Ones = WordOf(0xffff)
)

// WordOf returns the Word holding the bits of v.
//
func WordOf(v uint16) Word {
	var w Word
	for bit := range w {
		w[bit] = v&(1<<uint(bit)) != 0
	}
	return w
}

// Uint16 returns the bits of w as an uint16.
//
func (w Word) Uint16() uint16 {
	var out uint16
	for bit, b := range w {
		if b {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// Int16 returns w interpreted as a two's complement signed value.
//
func (w Word) Int16() int16 {
	return int16(w.Uint16())
}

// String returns w in binary, msb first.
//
func (w Word) String() string {
	var b strings.Builder
	b.Grow(WordSize)
	for i := WordSize - 1; i >= 0; i-- {
		if w[i] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ParseWord parses a 16 digits binary string, msb first. Underscores may be
// used as digit separators:
//
//	ParseWord("0000_0000_0000_0101") // WordOf(5)
//
func ParseWord(s string) (Word, error) {
	var w Word
	bit := WordSize
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		if c != '0' && c != '1' {
			return Zero, errors.Errorf("in %q at pos %d: expected binary digit", s, i+1)
		}
		bit--
		if bit < 0 {
			return Zero, errors.Errorf("in %q: more than %d bits", s, WordSize)
		}
		w[bit] = c == '1'
	}
	if bit != 0 {
		return Zero, errors.Errorf("in %q: expected %d bits, got %d", s, WordSize, WordSize-bit)
	}
	return w, nil
}
