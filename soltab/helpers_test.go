// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"testing"

	"cogentcore.org/solview/tensor"
	"github.com/stretchr/testify/require"
)

// phaseValues returns a tensor whose values grow by 0.7 per element,
// so that antenna differences exceed π and need wrapping.
func phaseValues(sizes ...int) *tensor.Float64 {
	tsr := tensor.NewFloat64(sizes...)
	for i := range tsr.Values {
		tsr.Values[i] = 0.7*float64(i) - 5
	}
	return tsr
}

// flagWeights returns 0/1 weights with every fifth element flagged.
func flagWeights(sizes ...int) *tensor.Float64 {
	tsr := tensor.NewFloat64(sizes...)
	for i := range tsr.Values {
		if i%5 != 4 {
			tsr.Values[i] = 1
		}
	}
	return tsr
}

var antennas = []string{"CS001HBA0", "CS002HBA0", "CS003HBA0", "RS106HBA"}

// phaseTable is stored as [ant, time, freq, pol] with
// 4 antennas, 3 times, 2 frequencies and XX, YY polarizations.
func phaseTable() *Table {
	return &Table{
		Solset: "sol000",
		Name:   "phase000",
		Type:   "phase",
		Axes: []Axis{
			NewLabelAxis(AxisAnt, antennas...),
			NewAxis(AxisTime, 0, 10, 20),
			NewAxis(AxisFreq, 120e6, 130e6),
			NewLabelAxis(AxisPol, "XX", "YY"),
		},
		Values:  phaseValues(4, 3, 2, 2),
		Weights: flagWeights(4, 3, 2, 2),
	}
}

// clockTable is stored as [ant, time] with 4 antennas and 5 times.
func clockTable() *Table {
	return &Table{
		Solset: "sol000",
		Name:   "clock000",
		Type:   "clock",
		Axes: []Axis{
			NewLabelAxis(AxisAnt, antennas...),
			NewAxis(AxisTime, 0, 1, 2, 3, 4),
		},
		Values: phaseValues(4, 5),
	}
}

func selectEntry(t *testing.T, tb *Table) *Entry {
	c := NewCache()
	_, err := c.Select(tb)
	require.NoError(t, err)
	return c.Current()
}
