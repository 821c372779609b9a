/*
Package nandsim provides the building blocks of a 16 bits computer, built
exclusively from NAND gates, and a clock driver to run them.

The hardware is split in layers, each one using only the layers below it:

	gate    NAND and the gates derived from it: Not, And, Or, Xor, Mux, DMux
	        and their 16 bits and N-way variants.
	arith   half adder, full adder, 16 bits adder and incrementer.
	alu     the ALU, selecting one of 18 functions with 6 control bits.
	seq     SR latch, D flip-flop, 1 bit and 16 bits registers.

Combinational parts are plain functions over bool (a single wire) and Word (a
16 bits bus, bit 0 being the lsb). Every wire is recomputed on demand; there
is no propagation delay.

Sequential parts hold state and are updated with an explicit clock level. A
Circuit drives a list of such updates, one clock cycle at a time:

	var r seq.Register
	c, err := nandsim.NewCircuit(2, func(clk bool) error {
		return r.Update(arith.Inc16(r.Out()), true, clk)
	})
	if err != nil {
		// ...
	}
	for i := 0; i < 10; i++ {
		if err := c.TickTock(); err != nil {
			// ...
		}
	}
	// r.Out().Uint16() == 10

*/
package nandsim
