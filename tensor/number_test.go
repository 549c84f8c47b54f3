// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(sizes ...int) *Float64 {
	tsr := NewFloat64(sizes...)
	for i := range tsr.Values {
		tsr.Values[i] = float64(i)
	}
	return tsr
}

func TestNumber(t *testing.T) {
	tsr := NewFloat64(4, 2)
	assert.Equal(t, 8, tsr.Len())
	tsr.SetFloat(3.5, 2, 1)
	assert.Equal(t, 3.5, tsr.Float(2, 1))
	assert.Equal(t, 3.5, tsr.Float1D(5))
	assert.Equal(t, 3.5, tsr.Value(2, 1))

	cln := tsr.Clone()
	cln.SetFloat1D(1, 5)
	assert.Equal(t, 3.5, tsr.Float1D(5))

	tsr.Fill(2)
	assert.Equal(t, 2.0, tsr.Float(0, 0))

	_, err := NewNumberFromValues([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	f32, err := NewNumberFromValues([]float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, f32.Float(1, 1))
}

func TestTranspose2D(t *testing.T) {
	tsr := ramp(2, 3)
	tsr.SetNames("a", "b")
	tr, err := tsr.Transpose(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, tr.Shp.Sizes)
	assert.Equal(t, []string{"b", "a"}, tr.Shp.Names)
	for i := range 2 {
		for j := range 3 {
			assert.Equal(t, tsr.Float(i, j), tr.Float(j, i))
		}
	}
}

func TestTranspose3D(t *testing.T) {
	tsr := ramp(2, 3, 4)
	tr, err := tsr.Transpose(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 3}, tr.Shp.Sizes)
	for i := range 2 {
		for j := range 3 {
			for k := range 4 {
				assert.Equal(t, tsr.Float(i, j, k), tr.Float(k, i, j))
			}
		}
	}

	back, err := tr.Transpose(InversePermutation([]int{2, 0, 1})...)
	require.NoError(t, err)
	assert.Equal(t, tsr.Shp.Sizes, back.Shp.Sizes)
	assert.Equal(t, tsr.Values, back.Values)
}

func TestTransposeIdentityAndErrors(t *testing.T) {
	tsr := ramp(2, 2)
	tr, err := tsr.Transpose(0, 1)
	require.NoError(t, err)
	assert.Equal(t, tsr.Values, tr.Values)

	_, err = tsr.Transpose(0)
	assert.ErrorIs(t, err, ErrBadPermutation)
	_, err = tsr.Transpose(0, 0)
	assert.ErrorIs(t, err, ErrBadPermutation)
	_, err = tsr.Transpose(0, 2)
	assert.ErrorIs(t, err, ErrBadPermutation)

	empty := NewFloat64(0, 3)
	et, err := empty.Transpose(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0}, et.Shp.Sizes)
}

func TestTransposeInterface(t *testing.T) {
	f32 := NewFloat32(2, 3)
	for i := range f32.Values {
		f32.Values[i] = float32(i)
	}
	tr, err := Transpose(f32, 1, 0)
	require.NoError(t, err)
	_, ok := tr.(*Float32)
	assert.True(t, ok)
	assert.Equal(t, 5.0, tr.Float(2, 1))
}

func TestPermutationHelpers(t *testing.T) {
	assert.True(t, IsIdentity([]int{0, 1, 2}))
	assert.False(t, IsIdentity([]int{1, 0}))
	assert.Equal(t, []int{1, 2, 0}, InversePermutation([]int{2, 0, 1}))
	assert.NoError(t, ValidatePermutation([]int{1, 0}, 2))

	assert.NoError(t, SameShape(NewFloat64(2, 3), NewFloat32(2, 3)))
	assert.ErrorIs(t, SameShape(NewFloat64(2, 3), NewFloat64(3, 2)), ErrShapeMismatch)
}
