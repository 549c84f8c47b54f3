// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"

	"cogentcore.org/solview/tensor"
	"gonum.org/v1/gonum/floats"
)

// Series is a 1D slice of a table: one or more lines against a common
// abscissa, one per polarization.
type Series struct {

	// Abscissa is the plot axis of X.
	Abscissa Abscissa

	// X are the abscissa coordinates.
	X []float64

	// Y are the ordinates, one line per polarization.
	Y [][]float64

	// Weights are the weights matching Y.
	Weights [][]float64

	// Labels are the polarization labels of the lines in Y,
	// or the table name for a table without polarizations.
	Labels []string

	// IsPhase is whether Y holds referenced phases.
	IsPhase bool

	// Slot is the selected index along the axis that is not plotted.
	Slot int

	// HasMultipleSlots is whether there is more than one slot to step through.
	HasMultipleSlots bool
}

// Extract1D returns the lines of entry e for the antenna, reference antenna
// and direction of sel, against time or frequency. Every polarization
// gets its own line. Phase tables are referenced against the reference
// antenna and wrapped when sel.WrapPhase is set.
// Frequency plots of tables without a frequency axis return an
// [UnsupportedAxisError].
func Extract1D(e *Entry, sel Selection) (*Series, error) {
	var absAxis, slotAxis string
	switch sel.Abscissa {
	case AbscissaTime:
		absAxis, slotAxis = AxisTime, AxisFreq
	case AbscissaFreq:
		if !e.Class.SupportsFrequencyAxis {
			return nil, &UnsupportedAxisError{Table: e.Key, Axis: AxisFreq, Reason: "no frequency axis for this solution kind"}
		}
		absAxis, slotAxis = AxisFreq, AxisTime
	default:
		return nil, &UnsupportedAxisError{Table: e.Key, Axis: sel.Abscissa.String(), Reason: "not a 1D plot axis"}
	}
	diff := sel.diffs()
	if diff.Freq && !e.Class.SupportsFrequencyAxis {
		return nil, &UnsupportedAxisError{Table: e.Key, Axis: AxisFreq, Reason: "no frequency axis to difference"}
	}
	s, err := newSlicer(e, sel)
	if err != nil {
		return nil, err
	}

	absDim, slotDim := e.pos.dim(absAxis), e.pos.dim(slotAxis)
	nabs := e.Values.DimSize(absDim)
	nslots, slot := 1, 0
	if slotDim >= 0 {
		nslots = e.Values.DimSize(slotDim)
		if sel.Slot < 0 || sel.Slot >= nslots {
			return nil, fmt.Errorf("soltab %s: %s slot %d of %d: %w", e.Key, slotAxis, sel.Slot, nslots, tensor.ErrOutOfRange)
		}
		slot = sel.Slot
	}
	absDiff := diff.Time && absAxis == AxisTime || diff.Freq && absAxis == AxisFreq
	slotDiff := diff.Time && slotAxis == AxisTime || diff.Freq && slotAxis == AxisFreq
	if absDiff && nabs < 2 {
		return nil, &DegenerateAxisError{Table: e.Key, Axis: absAxis, Len: nabs}
	}
	lo, hi := slot, slot
	if slotDiff {
		if nslots < 2 {
			return nil, &DegenerateAxisError{Table: e.Key, Axis: slotAxis, Len: nslots}
		}
		hi = slot + 1
		if hi == nslots {
			lo, hi = slot-1, slot
		}
	}

	sr := &Series{
		Abscissa:         sel.Abscissa,
		IsPhase:          s.ref,
		Slot:             slot,
		HasMultipleSlots: nslots > 1,
	}
	absAx, _ := e.Axis(absAxis)
	sr.X = absAx.Floats()
	if absDiff {
		sr.X = sr.X[1:]
	}

	pols, labels := []int{-1}, []string{e.Table.Name}
	if e.pos.pol >= 0 {
		polAx, _ := e.Axis(AxisPol)
		pols, labels = make([]int, polAx.Len()), make([]string, polAx.Len())
		for p := range pols {
			pols[p], labels[p] = p, polAx.Label(p)
		}
	}
	for _, p := range pols {
		y, w, err := s.line(absDim, s.at(slotDim, lo, e.pos.pol, p))
		if err != nil {
			return nil, err
		}
		if slotDiff {
			y2, w2, err := s.line(absDim, s.at(slotDim, hi, e.pos.pol, p))
			if err != nil {
				return nil, err
			}
			floats.Sub(y2, y)
			floats.Mul(w2, w)
			y, w = y2, w2
		}
		if absDiff {
			y, w = diffLine(y, w)
		}
		sr.Y = append(sr.Y, y)
		sr.Weights = append(sr.Weights, w)
	}
	sr.Labels = labels

	if diff.Pol && len(pols) > 1 {
		last := len(pols) - 1
		floats.Sub(sr.Y[0], sr.Y[last])
		floats.Mul(sr.Weights[0], sr.Weights[last])
		sr.Y, sr.Weights = sr.Y[:1], sr.Weights[:1]
		sr.Labels = []string{labels[0] + "-" + labels[last]}
	}
	if sr.IsPhase && sel.WrapPhase {
		for _, y := range sr.Y {
			WrapPhases(y)
		}
	}
	return sr, nil
}
