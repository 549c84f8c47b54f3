// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"

	"cogentcore.org/solview/base/errors"
)

// UnsupportedAxisError is returned when a table has an axis outside its
// canonical order, is missing a required axis, or when an operation
// needs an axis the solution kind does not support.
type UnsupportedAxisError struct {
	Table  string
	Axis   string
	Reason string
}

func (e *UnsupportedAxisError) Error() string {
	return fmt.Sprintf("soltab %s: unsupported axis %q: %s", e.Table, e.Axis, e.Reason)
}

// DegenerateAxisError is returned when an axis has too few samples
// for the requested plot or difference.
type DegenerateAxisError struct {
	Table string
	Axis  string
	Len   int
}

func (e *DegenerateAxisError) Error() string {
	return fmt.Sprintf("soltab %s: axis %q has only %d sample(s), nothing to plot", e.Table, e.Axis, e.Len)
}

// MissingReferenceAntennaError is returned when the reference antenna
// of a phase table cannot be resolved. Name is set when it was looked up
// by name, and Suggestion is the closest existing antenna name, if any.
type MissingReferenceAntennaError struct {
	Name       string
	Index      int
	Suggestion string
}

func (e *MissingReferenceAntennaError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("soltab: reference antenna index %d is outside the antenna axis", e.Index)
	}
	msg := fmt.Sprintf("soltab: reference antenna %q not found", e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

// IsRecoverable returns true if err reports a table or selection that
// cannot be plotted, as opposed to a violated contract. The viewer keeps
// running after a recoverable error with nothing drawn.
func IsRecoverable(err error) bool {
	var ua *UnsupportedAxisError
	var da *DegenerateAxisError
	return errors.As(err, &ua) || errors.As(err, &da)
}
