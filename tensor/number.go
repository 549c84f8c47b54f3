// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a tensor of float values, stored contiguously
// in row-major order.
type Number[T constraints.Float] struct {
	Shp    Shape
	Values []T
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T constraints.Float](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	return NewNumber[float64](sizes...)
}

// NewFloat32 returns a new [Float32] tensor
// with the given sizes per dimension (shape).
func NewFloat32(sizes ...int) *Float32 {
	return NewNumber[float32](sizes...)
}

// NewNumberFromValues returns a new tensor that uses the given
// row-major values directly, with the given sizes per dimension.
// The number of values must equal the product of the sizes.
func NewNumberFromValues[T constraints.Float](vals []T, sizes ...int) (*Number[T], error) {
	tsr := &Number[T]{}
	tsr.Shp.SetShapeSizes(sizes...)
	if len(vals) != tsr.Shp.Len() {
		return nil, fmt.Errorf("%w: %d values for shape %s", ErrShapeMismatch, len(vals), tsr.Shp.String())
	}
	tsr.Values = vals
	return tsr, nil
}

// SetShapeSizes sets the dimension sizes of the tensor, and resizes
// backing storage appropriately, retaining all existing data that fits.
func (tsr *Number[T]) SetShapeSizes(sizes ...int) {
	tsr.Shp.SetShapeSizes(sizes...)
	n := tsr.Shp.Len()
	if cap(tsr.Values) >= n {
		tsr.Values = tsr.Values[:n]
		return
	}
	vals := make([]T, n)
	copy(vals, tsr.Values)
	tsr.Values = vals
}

// SetNames sets the dimension names of the tensor shape.
func (tsr *Number[T]) SetNames(names ...string) { tsr.Shp.SetNames(names...) }

func (tsr *Number[T]) Shape() *Shape         { return &tsr.Shp }
func (tsr *Number[T]) Len() int              { return tsr.Shp.Len() }
func (tsr *Number[T]) NumDims() int          { return tsr.Shp.NumDims() }
func (tsr *Number[T]) DimSize(dim int) int   { return tsr.Shp.DimSize(dim) }
func (tsr *Number[T]) Value(i ...int) T      { return tsr.Values[tsr.Shp.Offset(i...)] }
func (tsr *Number[T]) Set(val T, i ...int)   { tsr.Values[tsr.Shp.Offset(i...)] = val }
func (tsr *Number[T]) Float1D(i int) float64 { return float64(tsr.Values[i]) }

func (tsr *Number[T]) Float(i ...int) float64 {
	return float64(tsr.Values[tsr.Shp.Offset(i...)])
}

func (tsr *Number[T]) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.Shp.Offset(i...)] = T(val)
}

func (tsr *Number[T]) SetFloat1D(val float64, i int) {
	tsr.Values[i] = T(val)
}

// Fill sets all values to the given value.
func (tsr *Number[T]) Fill(val T) {
	for i := range tsr.Values {
		tsr.Values[i] = val
	}
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Number[T]) Clone() Tensor {
	cl := &Number[T]{Values: slices.Clone(tsr.Values)}
	cl.Shp.CopyFrom(&tsr.Shp)
	return cl
}

// Transpose returns a new tensor whose dimension k is dimension perm[k]
// of this one. See the package-level [Transpose] function.
func (tsr *Number[T]) Transpose(perm ...int) (*Number[T], error) {
	nd := tsr.NumDims()
	if err := ValidatePermutation(perm, nd); err != nil {
		return nil, err
	}
	sizes := make([]int, nd)
	srcStrides := make([]int, nd)
	for k, p := range perm {
		sizes[k] = tsr.Shp.Sizes[p]
		srcStrides[k] = tsr.Shp.Strides[p]
	}
	out := NewNumber[T](sizes...)
	if tsr.Shp.Names != nil {
		names := make([]string, nd)
		for k, p := range perm {
			names[k] = tsr.Shp.Names[p]
		}
		out.SetNames(names...)
	}
	n := out.Len()
	if n == 0 {
		return out, nil
	}
	// walk the output in row-major order, stepping the source
	// offset by the permuted strides like an odometer.
	idx := make([]int, nd)
	src := 0
	for i := range n {
		out.Values[i] = tsr.Values[src]
		for d := nd - 1; d >= 0; d-- {
			idx[d]++
			src += srcStrides[d]
			if idx[d] < sizes[d] {
				break
			}
			src -= srcStrides[d] * sizes[d]
			idx[d] = 0
		}
	}
	return out, nil
}

// String satisfies the fmt.Stringer interface, printing the
// shape followed by the values of each innermost row.
func (tsr *Number[T]) String() string {
	var b strings.Builder
	b.WriteString(tsr.Shp.String())
	b.WriteString("\n")
	nd := tsr.NumDims()
	if nd == 0 {
		if len(tsr.Values) > 0 {
			fmt.Fprintf(&b, "%g\n", float64(tsr.Values[0]))
		}
		return b.String()
	}
	cols := tsr.Shp.Sizes[nd-1]
	if cols == 0 {
		return b.String()
	}
	for i := 0; i < len(tsr.Values); i += cols {
		idx := tsr.Shp.IndexFrom1D(i)
		fmt.Fprintf(&b, "%v:", idx[:nd-1])
		for _, v := range tsr.Values[i : i+cols] {
			fmt.Fprintf(&b, " %g", float64(v))
		}
		b.WriteString("\n")
	}
	return b.String()
}
