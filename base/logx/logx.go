// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and a
// colored default [slog] handler for terminal output.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It is typically set
// from command line flags or the settings file.
var UserLevel = slog.LevelInfo

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
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

// LevelFromString parses a level name such as "debug" or "WARN".
// The empty string is [slog.LevelInfo].
func LevelFromString(s string) (slog.Level, error) {
	var lv slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lv.UnmarshalText([]byte(s)); err != nil {
		return lv, fmt.Errorf("logx: invalid log level %q: %w", s, err)
	}
	return lv, nil
}

// NewHandler returns a text [slog.Handler] writing to w at the given level,
// with the level field colored according to the terminal capabilities of w
// and the time field omitted.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(LevelString(out, lv))
			}
			return a
		},
	})
}

// LevelString returns the name of the level styled for the given output.
func LevelString(out *termenv.Output, lv slog.Level) string {
	st := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		st = st.Foreground(out.Color("1")).Bold()
	case lv >= slog.LevelWarn:
		st = st.Foreground(out.Color("3"))
	case lv >= slog.LevelInfo:
		st = st.Foreground(out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}

// SetDefaultLogger sets the default logger to one writing
// to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}
