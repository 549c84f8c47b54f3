// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Line returns a copy of the values along dimension dim, holding all
// other dimensions fixed at the given index. The index must have one
// entry per dimension; the entry for dim itself is ignored.
func Line(tsr Tensor, dim int, index ...int) ([]float64, error) {
	sh := tsr.Shape()
	if dim < 0 || dim >= sh.NumDims() {
		return nil, fmt.Errorf("%w: dimension %d of %d", ErrOutOfRange, dim, sh.NumDims())
	}
	ix := slices.Clone(index)
	if len(ix) == len(sh.Sizes) {
		ix[dim] = 0
	}
	if err := sh.CheckIndex(ix...); err != nil {
		return nil, err
	}
	n := sh.DimSize(dim)
	out := make([]float64, n)
	if num, ok := tsr.(*Float64); ok {
		off, st := sh.Offset(ix...), sh.Strides[dim]
		for i := range n {
			out[i] = num.Values[off+i*st]
		}
		return out, nil
	}
	for i := range n {
		ix[dim] = i
		out[i] = tsr.Float(ix...)
	}
	return out, nil
}

// Plane returns a copy of the 2D plane spanned by dimensions row and col,
// holding all other dimensions fixed at the given index, as a dense matrix
// with one row per element of the row dimension.
func Plane(tsr Tensor, row, col int, index ...int) (*mat.Dense, error) {
	sh := tsr.Shape()
	nd := sh.NumDims()
	if row < 0 || row >= nd || col < 0 || col >= nd || row == col {
		return nil, fmt.Errorf("%w: plane dimensions %d, %d of %d", ErrOutOfRange, row, col, nd)
	}
	ix := slices.Clone(index)
	if len(ix) == nd {
		ix[row], ix[col] = 0, 0
	}
	if err := sh.CheckIndex(ix...); err != nil {
		return nil, err
	}
	nr, nc := sh.DimSize(row), sh.DimSize(col)
	if nr == 0 || nc == 0 {
		return nil, fmt.Errorf("%w: empty plane %dx%d", ErrShapeMismatch, nr, nc)
	}
	data := make([]float64, nr*nc)
	for r := range nr {
		ix[row] = r
		for c := range nc {
			ix[col] = c
			data[r*nc+c] = tsr.Float(ix...)
		}
	}
	return mat.NewDense(nr, nc, data), nil
}
