// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger, with the level
// colored when writing to a terminal.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. The default depends on the build tags:
// debug gives [slog.LevelDebug], release gives [slog.LevelWarn], and
// otherwise it is [slog.LevelInfo].
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewHandler returns a text handler writing to w at the given level,
// with the level attribute colored if w is a color terminal.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	colors := map[slog.Level]termenv.Color{
		slog.LevelDebug: termenv.ANSIBrightBlack,
		slog.LevelInfo:  termenv.ANSICyan,
		slog.LevelWarn:  termenv.ANSIYellow,
		slog.LevelError: termenv.ANSIRed,
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey || out.Profile == termenv.Ascii {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			c, ok := colors[lvl]
			if !ok {
				return a
			}
			return slog.String(a.Key, out.String(lvl.String()).Foreground(c).String())
		},
	})
}

// SetDefault sets the default [slog] logger to one writing to
// [os.Stderr] at [UserLevel].
func SetDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// Log logs the given error at the error level if it is non-nil,
// and returns it.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
