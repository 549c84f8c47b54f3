// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solset

import (
	"math"
	"testing"

	"cogentcore.org/solview/soltab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAntennaNames(t *testing.T) {
	assert.Equal(t, []string{"CS001HBA0", "CS002HBA0", "CS003HBA0", "RS106HBA", "RS107HBA"}, AntennaNames(5))
	assert.Equal(t, []string{"CS001HBA0"}, AntennaNames(1))
}

func TestSynthesize(t *testing.T) {
	opts := DefaultOptions()
	m, err := Synthesize(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"sol000"}, m.Solsets())
	names, err := m.Soltabs("sol000")
	require.NoError(t, err)
	assert.Equal(t, []string{"amplitude000", "phase000", "tec000", "phase_offset000", "clock000"}, names)
	dirs, err := m.Directions("sol000")
	require.NoError(t, err)
	assert.Equal(t, opts.Directions, dirs)

	ph, err := m.Soltab("sol000", "phase000")
	require.NoError(t, err)
	assert.Equal(t, []string{"pol", "dir", "ant", "freq", "time"}, ph.AxisNames())
	assert.Equal(t, []int{2, 2, 6, 8, 24}, ph.Values.Shape().Sizes)
	order, err := soltab.CanonicalOrder(ph.AxisNames(), ph.Name, ph.Type)
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "freq", "ant", "pol", "dir"}, order)

	// every table can be selected and plotted
	c := soltab.NewCache()
	for _, name := range names {
		tb, err := m.Soltab("sol000", name)
		require.NoError(t, err)
		_, err = c.Select(tb)
		require.NoError(t, err, name)
		sel := soltab.DefaultSelection()
		sel.Antenna = 4
		sr, err := soltab.Extract1D(c.Current(), sel)
		require.NoError(t, err, name)
		assert.Len(t, sr.X, opts.Times)
	}

	clk, err := m.Soltab("sol000", "clock000")
	require.NoError(t, err)
	assert.Equal(t, soltab.KindNoFrequency, clk.Classify().Kind)

	wsum := 0.0
	for i := range ph.Weights.Len() {
		w := ph.Weights.Float1D(i)
		assert.True(t, w == 0 || w == 1)
		wsum += w
	}
	frac := 1 - wsum/float64(ph.Weights.Len())
	assert.InDelta(t, opts.Flagged, frac, 0.04)
}

func TestSynthesizeWraps(t *testing.T) {
	m, err := Synthesize(DefaultOptions())
	require.NoError(t, err)
	ph, err := m.Soltab("sol000", "phase000")
	require.NoError(t, err)
	big := false
	for i := range ph.Values.Len() {
		if math.Abs(ph.Values.Float1D(i)) > math.Pi {
			big = true
			break
		}
	}
	assert.True(t, big)
}

func TestSynthesizeDeterministic(t *testing.T) {
	a, err := Synthesize(DefaultOptions())
	require.NoError(t, err)
	b, err := Synthesize(DefaultOptions())
	require.NoError(t, err)
	ta, _ := a.Soltab("sol000", "amplitude000")
	tb, _ := b.Soltab("sol000", "amplitude000")
	for i := range ta.Values.Len() {
		assert.Equal(t, ta.Values.Float1D(i), tb.Values.Float1D(i))
	}
}

func TestSynthesizeErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.Antennas = 0
	_, err := Synthesize(opts)
	assert.Error(t, err)
	opts = DefaultOptions()
	opts.Pols = nil
	_, err = Synthesize(opts)
	assert.Error(t, err)
}
