// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"
	"strings"
)

// Abscissa is the independent axis of a plot.
type Abscissa int32

const (
	// AbscissaTime plots values against time, one line per polarization.
	AbscissaTime Abscissa = iota

	// AbscissaFreq plots values against frequency, one line per polarization.
	AbscissaFreq

	// AbscissaWaterfall plots a 2D time-frequency image.
	AbscissaWaterfall
)

func (a Abscissa) String() string {
	switch a {
	case AbscissaFreq:
		return "freq"
	case AbscissaWaterfall:
		return "waterfall"
	}
	return "time"
}

// SetString sets the abscissa from its name, case-insensitively.
func (a *Abscissa) SetString(s string) error {
	switch strings.ToLower(s) {
	case "time":
		*a = AbscissaTime
	case "freq", "frequency":
		*a = AbscissaFreq
	case "waterfall", "2d":
		*a = AbscissaWaterfall
	default:
		return fmt.Errorf("soltab: unknown abscissa %q", s)
	}
	return nil
}

// Mode is the quantity that is plotted.
type Mode int32

const (
	// ModeValues plots the solution values.
	ModeValues Mode = iota

	// ModeWeights plots the solution weights.
	ModeWeights
)

func (m Mode) String() string {
	if m == ModeWeights {
		return "weights"
	}
	return "values"
}

// SetString sets the mode from its name, case-insensitively.
func (m *Mode) SetString(s string) error {
	switch strings.ToLower(s) {
	case "values", "value":
		*m = ModeValues
	case "weights", "weight":
		*m = ModeWeights
	default:
		return fmt.Errorf("soltab: unknown mode %q", s)
	}
	return nil
}

// DiffFlags select differences between neighboring samples along an
// axis, applied to values only.
type DiffFlags struct {

	// Time differences consecutive time samples.
	Time bool

	// Freq differences consecutive frequency samples.
	Freq bool

	// Pol differences the first and last polarization.
	Pol bool
}

// Any returns true if any difference is selected.
func (d DiffFlags) Any() bool { return d.Time || d.Freq || d.Pol }

// PolAll selects all polarizations.
const PolAll = -1

// Selection is the user choice of what to extract from the current table.
type Selection struct {

	// Antenna is the index of the antenna to plot.
	Antenna int

	// RefAntenna is the index of the reference antenna,
	// used for phase tables only.
	RefAntenna int

	// Pol is the polarization index for 2D plots, or [PolAll].
	// 1D plots always show every polarization.
	Pol int

	// Direction is the direction index, for tables with a dir axis.
	Direction int

	// Slot is the index along the axis that is not plotted in 1D:
	// the frequency channel for time plots and the time sample for
	// frequency plots.
	Slot int

	// Abscissa is the plot axis.
	Abscissa Abscissa

	// Diff selects differences between neighboring samples.
	Diff DiffFlags

	// Mode selects values or weights.
	Mode Mode

	// WrapPhase wraps phase results into [-π, π).
	WrapPhase bool
}

// DefaultSelection returns the selection used before any user choice.
func DefaultSelection() Selection {
	return Selection{Pol: PolAll, WrapPhase: true}
}

// diffs returns the differences that apply in the selected mode.
func (sel *Selection) diffs() DiffFlags {
	if sel.Mode == ModeWeights {
		return DiffFlags{}
	}
	return sel.Diff
}
