// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadPermutation is returned when an axis permutation does not
	// list every dimension of the tensor exactly once.
	ErrBadPermutation = errors.New("tensor: invalid axis permutation")

	// ErrShapeMismatch is returned when two tensors, or a tensor and its
	// backing values, do not have compatible shapes.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrOutOfRange is returned when an index is outside its dimension.
	ErrOutOfRange = errors.New("tensor: index out of range")
)

// Tensor is the interface for n-dimensional float tensors.
// Per C / Go / Python conventions, indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
// It is implemented by the [Number] generic type for float32 and float64.
type Tensor interface {
	fmt.Stringer

	// Shape returns a pointer to the Shape that fully parametrizes
	// the tensor shape.
	Shape() *Shape

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// Float returns the value of given n-dimensional index (matching Shape) as a float64.
	Float(i ...int) float64

	// SetFloat sets the value of given n-dimensional index (matching Shape) as a float64.
	SetFloat(val float64, i ...int)

	// Float1D returns the value of given 1-dimensional index (0-Len()-1) as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value of given 1-dimensional index (0-Len()-1) as a float64.
	SetFloat1D(val float64, i int)

	// Clone returns a copy of the tensor with its own separate values.
	Clone() Tensor
}

// Transpose returns a new tensor whose dimension k is dimension perm[k]
// of the source, copying all values into the new row-major order.
// Dimension names follow their dimensions. The cost is one pass
// over all elements.
func Transpose(tsr Tensor, perm ...int) (Tensor, error) {
	switch t := tsr.(type) {
	case *Number[float64]:
		return t.Transpose(perm...)
	case *Number[float32]:
		return t.Transpose(perm...)
	}
	src := NewFloat64()
	src.Shp.CopyFrom(tsr.Shape())
	src.Values = make([]float64, tsr.Len())
	for i := range src.Values {
		src.Values[i] = tsr.Float1D(i)
	}
	return src.Transpose(perm...)
}

// ValidatePermutation returns [ErrBadPermutation] unless perm lists
// each of the first ndims dimensions exactly once.
func ValidatePermutation(perm []int, ndims int) error {
	if len(perm) != ndims {
		return fmt.Errorf("%w: %d entries for %d dimensions", ErrBadPermutation, len(perm), ndims)
	}
	seen := make([]bool, ndims)
	for _, p := range perm {
		if p < 0 || p >= ndims || seen[p] {
			return fmt.Errorf("%w: %v", ErrBadPermutation, perm)
		}
		seen[p] = true
	}
	return nil
}

// InversePermutation returns the permutation that undoes perm,
// such that transposing by perm and then by the inverse
// restores the original order.
func InversePermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for k, p := range perm {
		inv[p] = k
	}
	return inv
}

// IsIdentity returns true if perm leaves every dimension in place.
func IsIdentity(perm []int) bool {
	for k, p := range perm {
		if k != p {
			return false
		}
	}
	return true
}

// SameShape returns [ErrShapeMismatch] if a and b differ in their sizes.
func SameShape(a, b Tensor) error {
	if !a.Shape().IsEqual(b.Shape()) {
		return fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, a.Shape(), b.Shape())
	}
	return nil
}
