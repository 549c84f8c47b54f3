// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
	"strings"
)

// Shape manages a tensor's shape information, including sizes,
// row-major strides, and optional names for each dimension.
type Shape struct {

	// Sizes is the size of each dimension, outermost first.
	Sizes []int

	// Strides is the offset step for each dimension in row-major order.
	Strides []int

	// Names are optional names for each dimension.
	Names []string
}

// NewShape returns a new shape with given sizes.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShapeSizes(sizes...)
	return sh
}

// SetShapeSizes sets the shape sizes from list of ints, recomputing
// the strides. Names are kept only if the number of dimensions
// is unchanged.
func (sh *Shape) SetShapeSizes(sizes ...int) {
	if len(sizes) != len(sh.Names) {
		sh.Names = nil
	}
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = RowMajorStrides(sizes...)
}

// SetNames sets the dimension names. A nil or empty list removes them.
func (sh *Shape) SetNames(names ...string) {
	if len(names) == 0 {
		sh.Names = nil
		return
	}
	sh.Names = make([]string, len(sh.Sizes))
	copy(sh.Names, names)
}

// CopyFrom copies the shape parameters from another Shape struct.
// Copies the data so it is not accidentally subject to updates.
func (sh *Shape) CopyFrom(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Strides = slices.Clone(cp.Strides)
	sh.Names = slices.Clone(cp.Names)
}

// Len returns the total length of elements in the tensor
// (i.e., the product of the shape sizes).
func (sh *Shape) Len() int {
	ln := 1
	for _, v := range sh.Sizes {
		ln *= v
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int { return sh.Sizes[i] }

// DimByName returns the index of the given dimension name,
// or -1 if no dimension has that name.
func (sh *Shape) DimByName(name string) int {
	return slices.Index(sh.Names, name)
}

// IsEqual returns true if this shape has the same sizes as the other.
// Names are not compared.
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// Offset returns the "flat" 1D array index into an element
// at the given n-dimensional index.
// No checking is done on the length or size of the index values
// relative to the shape of the tensor.
func (sh *Shape) Offset(index ...int) int {
	var offset int
	for i, v := range index {
		offset += v * sh.Strides[i]
	}
	return offset
}

// IndexFrom1D returns the n-dimensional index from a "flat" 1D array index.
func (sh *Shape) IndexFrom1D(oned int) []int {
	nd := len(sh.Sizes)
	index := make([]int, nd)
	rem := oned
	for i := nd - 1; i >= 0; i-- {
		s := sh.Sizes[i]
		if s == 0 {
			return index
		}
		index[i] = rem % s
		rem /= s
	}
	return index
}

// CheckIndex returns [ErrOutOfRange] if the index does not
// address an element of this shape.
func (sh *Shape) CheckIndex(index ...int) error {
	if len(index) != len(sh.Sizes) {
		return fmt.Errorf("%w: %d indexes for %d dimensions", ErrOutOfRange, len(index), len(sh.Sizes))
	}
	for d, v := range index {
		if v < 0 || v >= sh.Sizes[d] {
			return fmt.Errorf("%w: index %d is outside dimension %s of size %d", ErrOutOfRange, v, sh.dimLabel(d), sh.Sizes[d])
		}
	}
	return nil
}

func (sh *Shape) dimLabel(d int) string {
	if d < len(sh.Names) && sh.Names[d] != "" {
		return sh.Names[d]
	}
	return fmt.Sprint(d)
}

// String satisfies the fmt.Stringer interface.
func (sh *Shape) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, s := range sh.Sizes {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(sh.Names) && sh.Names[i] != "" {
			b.WriteString(sh.Names[i] + ": ")
		}
		fmt.Fprint(&b, s)
	}
	b.WriteString("]")
	return b.String()
}

// RowMajorStrides returns strides for sizes where the first dimension is outermost
// and subsequent dimensions are progressively inner.
func RowMajorStrides(sizes ...int) []int {
	if len(sizes) == 0 {
		return nil
	}
	rem := 1
	for _, v := range sizes {
		rem *= v
	}
	if rem == 0 {
		strides := make([]int, len(sizes))
		for i := range strides {
			strides[i] = rem
		}
		return strides
	}
	strides := make([]int, len(sizes))
	for i, v := range sizes {
		rem /= v
		strides[i] = rem
	}
	return strides
}
