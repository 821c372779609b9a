package gate_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/gate"
)

func TestMuxNWay16(t *testing.T) {
	f := func(in [8]uint16) bool {
		var w [8]nandsim.Word
		for i := range w {
			w[i] = nandsim.WordOf(in[i])
		}
		for sel := 0; sel < 4; sel++ {
			if got := gate.Mux4Way16(w[0], w[1], w[2], w[3], gate.Sel2(sel)); got != w[sel] {
				t.Logf("Mux4Way16 sel=%d: expected %v, got %v", sel, w[sel], got)
				return false
			}
		}
		for sel := 0; sel < 8; sel++ {
			if got := gate.Mux8Way16(w[0], w[1], w[2], w[3], w[4], w[5], w[6], w[7], gate.Sel3(sel)); got != w[sel] {
				t.Logf("Mux8Way16 sel=%d: expected %v, got %v", sel, w[sel], got)
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestDMuxNWay(t *testing.T) {
	for _, in := range []bool{false, true} {
		for sel := 0; sel < 4; sel++ {
			a, b, c, d := gate.DMux4Way(in, gate.Sel2(sel))
			for i, out := range []bool{a, b, c, d} {
				if exp := in && i == sel; out != exp {
					t.Errorf("DMux4Way(%v, %d): output %d = %v, got %v", in, sel, i, exp, out)
				}
			}
		}
		for sel := 0; sel < 8; sel++ {
			a, b, c, d, e, f, g, h := gate.DMux8Way(in, gate.Sel3(sel))
			for i, out := range []bool{a, b, c, d, e, f, g, h} {
				if exp := in && i == sel; out != exp {
					t.Errorf("DMux8Way(%v, %d): output %d = %v, got %v", in, sel, i, exp, out)
				}
			}
		}
	}
}

// A word routed through a demux bit by bit then gathered back by the mux with
// the same selector comes out unchanged, whatever the other inputs.
func TestMuxDMux_roundTrip(t *testing.T) {
	f := func(v uint16, other [8]uint16) bool {
		in := nandsim.WordOf(v)
		for sel := 0; sel < 8; sel++ {
			var outs [8]nandsim.Word
			for bit := range in {
				a, b, c, d, e, f, g, h := gate.DMux8Way(in[bit], gate.Sel3(sel))
				for i, o := range []bool{a, b, c, d, e, f, g, h} {
					outs[i][bit] = o
				}
			}
			for i := range outs {
				if i != sel {
					if outs[i] != nandsim.Zero {
						return false
					}
					outs[i] = nandsim.WordOf(other[i])
				}
			}
			got := gate.Mux8Way16(outs[0], outs[1], outs[2], outs[3], outs[4], outs[5], outs[6], outs[7], gate.Sel3(sel))
			if got != in {
				return false
			}
			if sel < 4 {
				var outs4 [4]nandsim.Word
				for bit := range in {
					a, b, c, d := gate.DMux4Way(in[bit], gate.Sel2(sel))
					outs4[0][bit], outs4[1][bit], outs4[2][bit], outs4[3][bit] = a, b, c, d
				}
				if gate.Mux4Way16(outs4[0], outs4[1], outs4[2], outs4[3], gate.Sel2(sel)) != in {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
