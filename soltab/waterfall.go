// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"

	"cogentcore.org/solview/tensor"
	"gonum.org/v1/gonum/mat"
)

// Waterfall is a 2D time by frequency slice of a table.
type Waterfall struct {

	// Times are the time coordinates of the rows of Z.
	Times []float64

	// Freqs are the frequency coordinates of the columns of Z.
	Freqs []float64

	// Z has one row per time and one column per frequency.
	Z *mat.Dense

	// ZWeight are the weights matching Z.
	ZWeight *mat.Dense

	// Label is the polarization label, e.g. XX or XX-YY.
	Label string

	// IsPhase is whether Z holds referenced phases.
	IsPhase bool
}

// Extract2D returns the time by frequency waterfall of entry e for the
// antenna, reference antenna, polarization and direction of sel.
// Solution kinds without a frequency axis, and scalar offsets, return an
// [UnsupportedAxisError]; tables with a single time or frequency sample
// return a [DegenerateAxisError].
func Extract2D(e *Entry, sel Selection) (*Waterfall, error) {
	if !e.Class.Supports2D {
		reason := "no frequency axis for this solution kind"
		if e.Class.Kind == KindScalarOffset {
			reason = "scalar offsets have no waterfall"
		}
		return nil, &UnsupportedAxisError{Table: e.Key, Axis: AxisFreq, Reason: reason}
	}
	nt, nf := e.AxisLen(AxisTime), e.AxisLen(AxisFreq)
	if nt < 2 {
		return nil, &DegenerateAxisError{Table: e.Key, Axis: AxisTime, Len: nt}
	}
	if nf < 2 {
		return nil, &DegenerateAxisError{Table: e.Key, Axis: AxisFreq, Len: nf}
	}
	s, err := newSlicer(e, sel)
	if err != nil {
		return nil, err
	}
	diff := sel.diffs()

	wf := &Waterfall{IsPhase: s.ref, Label: e.Table.Name}
	pol, last := -1, -1
	if e.pos.pol >= 0 {
		polAx, _ := e.Axis(AxisPol)
		npol := polAx.Len()
		pol = sel.Pol
		if pol == PolAll {
			pol = 0
		}
		if pol < 0 || pol >= npol {
			return nil, fmt.Errorf("soltab %s: polarization %d of %d: %w", e.Key, sel.Pol, npol, tensor.ErrOutOfRange)
		}
		wf.Label = polAx.Label(pol)
		if diff.Pol && npol > 1 {
			pol, last = 0, npol-1
			wf.Label = polAx.Label(0) + "-" + polAx.Label(last)
		}
	}

	z, zw, err := s.plane(s.at(e.pos.pol, pol))
	if err != nil {
		return nil, err
	}
	if last >= 0 {
		z2, zw2, err := s.plane(s.at(e.pos.pol, last))
		if err != nil {
			return nil, err
		}
		z.Sub(z, z2)
		zw.MulElem(zw, zw2)
	}

	tax, _ := e.Axis(AxisTime)
	fax, _ := e.Axis(AxisFreq)
	wf.Times, wf.Freqs = tax.Floats(), fax.Floats()
	if diff.Time {
		z, zw = diffRows(z, zw)
		wf.Times = wf.Times[1:]
	}
	if diff.Freq {
		z, zw = diffCols(z, zw)
		wf.Freqs = wf.Freqs[1:]
	}
	if wf.IsPhase && sel.WrapPhase {
		z.Apply(func(_, _ int, v float64) float64 { return WrapPhase(v) }, z)
	}
	wf.Z, wf.ZWeight = z, zw
	return wf, nil
}

// diffRows returns the differences between consecutive rows of z
// and the products of consecutive rows of zw.
func diffRows(z, zw *mat.Dense) (*mat.Dense, *mat.Dense) {
	r, c := z.Dims()
	d := mat.NewDense(r-1, c, nil)
	d.Sub(z.Slice(1, r, 0, c), z.Slice(0, r-1, 0, c))
	dw := mat.NewDense(r-1, c, nil)
	dw.MulElem(zw.Slice(1, r, 0, c), zw.Slice(0, r-1, 0, c))
	return d, dw
}

// diffCols returns the differences between consecutive columns of z
// and the products of consecutive columns of zw.
func diffCols(z, zw *mat.Dense) (*mat.Dense, *mat.Dense) {
	r, c := z.Dims()
	d := mat.NewDense(r, c-1, nil)
	d.Sub(z.Slice(0, r, 1, c), z.Slice(0, r, 0, c-1))
	dw := mat.NewDense(r, c-1, nil)
	dw.MulElem(zw.Slice(0, r, 1, c), zw.Slice(0, r, 0, c-1))
	return d, dw
}
