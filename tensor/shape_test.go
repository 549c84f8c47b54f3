// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape(t *testing.T) {
	sh := NewShape(3, 2, 4)
	sh.SetNames("time", "freq", "ant")
	assert.Equal(t, 24, sh.Len())
	assert.Equal(t, 3, sh.NumDims())
	assert.Equal(t, []int{8, 4, 1}, sh.Strides)
	assert.Equal(t, 1, sh.DimByName("freq"))
	assert.Equal(t, -1, sh.DimByName("pol"))
	assert.Equal(t, 8+4+3, sh.Offset(1, 1, 3))
	assert.Equal(t, []int{1, 1, 3}, sh.IndexFrom1D(15))
	assert.Equal(t, "[time: 3, freq: 2, ant: 4]", sh.String())

	assert.NoError(t, sh.CheckIndex(2, 1, 3))
	assert.ErrorIs(t, sh.CheckIndex(3, 0, 0), ErrOutOfRange)
	assert.ErrorIs(t, sh.CheckIndex(0, 0), ErrOutOfRange)

	sh.SetShapeSizes(4, 6)
	assert.Nil(t, sh.Names)
	assert.Equal(t, []int{6, 1}, sh.Strides)

	cp := &Shape{}
	cp.CopyFrom(sh)
	assert.True(t, cp.IsEqual(sh))
	cp.Sizes[0] = 5
	assert.Equal(t, 4, sh.Sizes[0])
}

func TestRowMajorStrides(t *testing.T) {
	assert.Nil(t, RowMajorStrides())
	assert.Equal(t, []int{1}, RowMajorStrides(5))
	assert.Equal(t, []int{6, 3, 1}, RowMajorStrides(2, 2, 3))
	assert.Equal(t, []int{0, 0}, RowMajorStrides(0, 3))
}
