// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command nandsim evaluates ALU functions built from NAND gates.
//
// Usage:
//
//	nandsim -x 5 -y 3            # all ALU functions of x=5, y=3
//	nandsim -x 5 -y 'x*2' -f x-y # a single function, y evaluated as 10
//	nandsim -x 5 -c 000010       # raw control bits (x+y)
//	nandsim -x 5 -count 10       # a register counter, 10 clock cycles from x
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/alu"
	"github.com/db47h/nandsim/arith"
	"github.com/db47h/nandsim/internal/expr"
	"github.com/db47h/nandsim/seq"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

type config struct {
	x, y    string
	fn      string
	ctl     string
	trace   bool
	logJSON string
	count   uint
}

func main() {
	var cfg config
	flag.StringVar(&cfg.x, "x", "0", "x operand `expression`")
	flag.StringVar(&cfg.y, "y", "0", "y operand `expression`, may use x")
	flag.StringVar(&cfg.fn, "f", "all", "ALU function `name` or \"all\"")
	flag.StringVar(&cfg.ctl, "c", "", "raw ALU control `bits` (zx nx zy ny f no), overrides -f")
	flag.BoolVar(&cfg.trace, "trace", false, "log ALU function stage outputs")
	flag.StringVar(&cfg.logJSON, "log-json", "", "also write JSON logs to `file`")
	flag.UintVar(&cfg.count, "count", 0, "run a register counter for `n` clock cycles, starting from x")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s: unknown arguments: %v\n", os.Args[0], flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(os.Stderr, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(1)
	}
	defer closeLog()

	if err = run(os.Stdout, logger, cfg); err != nil {
		logger.Error("nandsim", "err", err)
		closeLog()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg config) (*slog.Logger, func(), error) {
	level := new(slog.LevelVar)
	if cfg.trace {
		level.Set(slog.LevelDebug)
	}
	opts := &slog.HandlerOptions{Level: level}

	handlers := []slog.Handler{slog.NewTextHandler(w, opts)}
	closeLog := func() {}
	if cfg.logJSON != "" {
		f, err := os.Create(cfg.logJSON)
		if err != nil {
			return nil, nil, errors.Wrap(err, "json log")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closeLog = func() { f.Close() }
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeLog, nil
}

func run(w io.Writer, logger *slog.Logger, cfg config) error {
	x, err := expr.Word(cfg.x, nil)
	if err != nil {
		return errors.Wrap(err, "x")
	}
	if cfg.count > 0 {
		return count(w, logger, nandsim.WordOf(x), cfg.count)
	}
	y, err := expr.Word(cfg.y, map[string]int64{"x": int64(int16(x))})
	if err != nil {
		return errors.Wrap(err, "y")
	}

	fns, err := functions(cfg)
	if err != nil {
		return err
	}

	u := alu.Unit{}
	if cfg.trace {
		u.Probe = alu.LogProbe(logger)
	}
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	xw, yw := nandsim.WordOf(x), nandsim.WordOf(y)
	logger.Debug("operands", "x", xw.String(), "y", yw.String())
	for _, f := range fns {
		r := u.Compute(xw, yw, f.Control)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\tzr=%d\tng=%d\n", f.Name, f.Control, r.Out, r.Out.Int16(), b2i(r.ZR), b2i(r.NG))
	}
	return tw.Flush()
}

func functions(cfg config) ([]alu.Function, error) {
	if cfg.ctl != "" {
		c, err := alu.ParseControl(cfg.ctl)
		if err != nil {
			return nil, err
		}
		name := c.Name()
		if name == "" {
			name = "?"
		}
		return []alu.Function{{Name: name, Control: c}}, nil
	}
	if cfg.fn == "all" {
		return alu.Functions, nil
	}
	c, err := alu.Lookup(cfg.fn)
	if err != nil {
		return nil, err
	}
	return []alu.Function{{Name: c.Name(), Control: c}}, nil
}

func count(w io.Writer, logger *slog.Logger, start nandsim.Word, cycles uint) error {
	var r seq.Register
	r.Load(start)
	c, err := nandsim.NewCircuit(2, func(clk bool) error {
		return r.Update(arith.Inc16(r.Out()), true, clk)
	})
	if err != nil {
		return err
	}
	c.Log = logger
	for i := uint(0); i < cycles; i++ {
		if err = c.TickTock(); err != nil {
			return err
		}
	}
	logger.Debug("counter done", "steps", c.Steps())
	_, err = fmt.Fprintf(w, "%s\t%d\n", r.Out(), r.Out().Int16())
	return err
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
