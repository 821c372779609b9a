package hwtest_test

import (
	"testing"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/gate"
	"github.com/db47h/nandsim/hwtest"
)

func TestCompareBinary(t *testing.T) {
	or16 := func(a, b nandsim.Word) nandsim.Word {
		var out nandsim.Word
		for i := range out {
			notA := gate.Nand(a[i], a[i])
			notB := gate.Nand(b[i], b[i])
			out[i] = gate.Nand(notA, notB)
		}
		return out
	}
	hwtest.CompareBinary(t, "custom_or16", or16, func(a, b uint16) uint16 { return a | b })
}

func TestCompareUnary(t *testing.T) {
	hwtest.CompareUnary(t, "Not16", gate.Not16, func(in uint16) uint16 { return ^in })
}

func TestTruthTable(t *testing.T) {
	xor := func(in []bool) []bool {
		nandAB := gate.Nand(in[0], in[1])
		w0 := gate.Nand(in[0], nandAB)
		w1 := gate.Nand(in[1], nandAB)
		return []bool{gate.Nand(w0, w1)}
	}
	hwtest.TruthTable(t, "custom_xor", 2, xor, [][]bool{{false, true, true, false}})
}
