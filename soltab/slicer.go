// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"
	"slices"

	"cogentcore.org/solview/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// slicer reads referenced lines and planes out of an entry
// for the antenna and direction of a selection.
type slicer struct {
	e   *Entry
	sel Selection

	// ref is whether values are referenced against sel.RefAntenna.
	ref bool

	// index is the base index with antenna and direction set.
	index []int
}

func newSlicer(e *Entry, sel Selection) (*slicer, error) {
	nant := e.AxisLen(AxisAnt)
	if sel.Antenna < 0 || sel.Antenna >= nant {
		return nil, fmt.Errorf("soltab %s: antenna %d of %d: %w", e.Key, sel.Antenna, nant, tensor.ErrOutOfRange)
	}
	s := &slicer{e: e, sel: sel}
	s.ref = e.Class.SupportsPhaseReferencing && sel.Mode == ModeValues
	if s.ref && (sel.RefAntenna < 0 || sel.RefAntenna >= nant) {
		return nil, &MissingReferenceAntennaError{Index: sel.RefAntenna}
	}
	s.index = make([]int, e.Values.NumDims())
	s.index[e.pos.ant] = sel.Antenna
	if d := e.pos.dir; d >= 0 {
		ndir := e.Values.DimSize(d)
		if sel.Direction < 0 || sel.Direction >= ndir {
			return nil, fmt.Errorf("soltab %s: direction %d of %d: %w", e.Key, sel.Direction, ndir, tensor.ErrOutOfRange)
		}
		s.index[d] = sel.Direction
	}
	return s, nil
}

// at returns a copy of the base index with each (dim, index) pair set.
// Pairs with a negative dim are for absent axes and are skipped.
func (s *slicer) at(pairs ...int) []int {
	ix := slices.Clone(s.index)
	for k := 0; k+1 < len(pairs); k += 2 {
		if d := pairs[k]; d >= 0 {
			ix[d] = pairs[k+1]
		}
	}
	return ix
}

// line returns the values and weights along dim at index ix,
// with values referenced as needed.
func (s *slicer) line(dim int, ix []int) ([]float64, []float64, error) {
	v, err := tensor.Line(s.e.Values, dim, ix...)
	if err != nil {
		return nil, nil, err
	}
	w, err := tensor.Line(s.e.Weights, dim, ix...)
	if err != nil {
		return nil, nil, err
	}
	if s.ref {
		rix := slices.Clone(ix)
		rix[s.e.pos.ant] = s.sel.RefAntenna
		r, err := tensor.Line(s.e.Values, dim, rix...)
		if err != nil {
			return nil, nil, err
		}
		ReferencePhase(v, r)
	}
	return v, w, nil
}

// plane returns the time by frequency values and weights at index ix,
// with values referenced as needed.
func (s *slicer) plane(ix []int) (*mat.Dense, *mat.Dense, error) {
	tm, fq := s.e.pos.time, s.e.pos.freq
	z, err := tensor.Plane(s.e.Values, tm, fq, ix...)
	if err != nil {
		return nil, nil, err
	}
	zw, err := tensor.Plane(s.e.Weights, tm, fq, ix...)
	if err != nil {
		return nil, nil, err
	}
	if s.ref {
		rix := slices.Clone(ix)
		rix[s.e.pos.ant] = s.sel.RefAntenna
		zr, err := tensor.Plane(s.e.Values, tm, fq, rix...)
		if err != nil {
			return nil, nil, err
		}
		z.Sub(z, zr)
	}
	return z, zw, nil
}

// diffLine returns the differences of consecutive values and the
// products of consecutive weights, each one shorter than the input.
func diffLine(v, w []float64) ([]float64, []float64) {
	n := len(v) - 1
	dv := make([]float64, n)
	dw := make([]float64, n)
	floats.SubTo(dv, v[1:], v[:n])
	floats.MulTo(dw, w[1:], w[:n])
	return dv, dw
}
