// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	tsr := ramp(3, 2, 4)
	ln, err := Line(tsr, 0, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 14, 22}, ln)

	ln, err = Line(tsr, 2, 1, 0, 99)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 9, 10, 11}, ln)

	f32 := NewFloat32(3, 2, 4)
	for i := range f32.Values {
		f32.Values[i] = float32(i)
	}
	ln, err = Line(f32, 0, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 14, 22}, ln)

	_, err = Line(tsr, 3, 0, 0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Line(tsr, 0, 0, 2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPlane(t *testing.T) {
	tsr := ramp(3, 2, 4)
	pl, err := Plane(tsr, 0, 1, 0, 0, 3)
	require.NoError(t, err)
	r, c := pl.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, pl.At(0, 0))
	assert.Equal(t, 7.0, pl.At(0, 1))
	assert.Equal(t, 23.0, pl.At(2, 1))

	_, err = Plane(tsr, 1, 1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Plane(tsr, 0, 1, 0, 0, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
