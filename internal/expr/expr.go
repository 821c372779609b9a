// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package expr evaluates integer expressions used as operands on the command
// line, like "0x7fff", "-1" or "x * 2 + 1".
//
package expr

import (
	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval evaluates src as a Starlark expression with the given integer
// variables and returns its value, which must fit in an int64.
//
func Eval(src string, vars map[string]int64) (int64, error) {
	thread := &starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	env := make(starlark.StringDict, len(vars))
	for k, v := range vars {
		env[k] = starlark.MakeInt64(v)
	}
	v, err := starlark.EvalOptions(&opts, thread, "expr", src, env)
	if err != nil {
		return 0, errors.Wrapf(err, "eval %q", src)
	}
	i, ok := v.(starlark.Int)
	if !ok {
		return 0, errors.Errorf("eval %q: %s is not an integer", src, v.Type())
	}
	n, ok := i.Int64()
	if !ok {
		return 0, errors.Errorf("eval %q: %s overflows int64", src, i)
	}
	return n, nil
}

// Word evaluates src like Eval and checks that the result fits in 16 bits,
// signed or unsigned. Negative values are returned in two's complement.
//
func Word(src string, vars map[string]int64) (uint16, error) {
	n, err := Eval(src, vars)
	if err != nil {
		return 0, err
	}
	if n < -0x8000 || n > 0xffff {
		return 0, errors.Errorf("eval %q: %d does not fit in 16 bits", src, n)
	}
	return uint16(n), nil
}
