// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alu

import (
	"log/slog"

	"github.com/db47h/nandsim"
)

// LogProbe returns a Probe that logs the function stage output to l at debug
// level.
//
func LogProbe(l *slog.Logger) Probe {
	return func(c Control, combined nandsim.Word) {
		l.Debug("alu",
			slog.String("ctl", c.String()),
			slog.String("fn", c.Name()),
			slog.String("combined", combined.String()))
	}
}
