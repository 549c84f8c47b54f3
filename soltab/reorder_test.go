// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"testing"

	"cogentcore.org/solview/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderCorrespondence(t *testing.T) {
	values := phaseValues(4, 3, 2, 2)
	weights := flagWeights(4, 3, 2, 2)
	original := []string{"ant", "time", "freq", "pol"}
	canonical := []string{"time", "freq", "ant", "pol"}

	rv, rw, err := Reorder(values, weights, original, canonical)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 4, 2}, rv.Shape().Sizes)
	assert.Equal(t, []int{3, 2, 4, 2}, rw.Shape().Sizes)
	for tm := range 3 {
		for f := range 2 {
			for a := range 4 {
				for p := range 2 {
					assert.Equal(t, values.Float(a, tm, f, p), rv.Float(tm, f, a, p))
					assert.Equal(t, weights.Float(a, tm, f, p), rw.Float(tm, f, a, p))
				}
			}
		}
	}
}

func TestReorderRoundTrip(t *testing.T) {
	values := phaseValues(2, 3, 4, 5, 2)
	weights := flagWeights(2, 3, 4, 5, 2)
	original := []string{"pol", "dir", "ant", "freq", "time"}
	canonical, err := CanonicalOrder(original, "amplitude000", "amplitude")
	require.NoError(t, err)

	rv, rw, err := Reorder(values, weights, original, canonical)
	require.NoError(t, err)
	bv, bw, err := Reorder(rv, rw, canonical, original)
	require.NoError(t, err)
	assert.Equal(t, values.Values, bv.(*tensor.Float64).Values)
	assert.Equal(t, weights.Values, bw.(*tensor.Float64).Values)
	assert.Equal(t, values.Shape().Sizes, bv.Shape().Sizes)
}

func TestReorderIdentity(t *testing.T) {
	values := phaseValues(3, 2, 4)
	weights := flagWeights(3, 2, 4)
	order := []string{"time", "freq", "ant"}
	rv, rw, err := Reorder(values, weights, order, order)
	require.NoError(t, err)
	assert.Same(t, values, rv)
	assert.Same(t, weights, rw)
}

func TestReorderFloat32(t *testing.T) {
	values := tensor.NewFloat32(2, 3)
	for i := range values.Values {
		values.Values[i] = float32(i)
	}
	weights := tensor.NewFloat32(2, 3)
	weights.Fill(1)
	rv, rw, err := Reorder(values, weights, []string{"ant", "time"}, []string{"time", "ant"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, rv.Shape().Sizes)
	assert.Equal(t, 5.0, rv.Float(2, 1))
	assert.Equal(t, 1.0, rw.Float(2, 1))
}

func TestReorderErrors(t *testing.T) {
	values := phaseValues(3, 2, 4)
	_, _, err := Reorder(values, flagWeights(3, 4, 2), []string{"time", "freq", "ant"}, []string{"time", "freq", "ant"})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, _, err = Reorder(values, flagWeights(3, 2, 4), []string{"time", "ant"}, []string{"time", "ant"})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, _, err = Reorder(values, flagWeights(3, 2, 4), []string{"time", "freq", "ant"}, []string{"time", "freq", "dir"})
	assert.ErrorIs(t, err, tensor.ErrBadPermutation)
}
