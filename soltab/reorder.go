// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"

	"cogentcore.org/solview/tensor"
)

// ReorderFunc is the signature of [Reorder].
type ReorderFunc func(values, weights tensor.Tensor, original, canonical []string) (tensor.Tensor, tensor.Tensor, error)

// Reorder transposes values and weights from the original axis order into
// the canonical order, applying the same permutation to both so that each
// value keeps its weight at the same index. Every element is copied, so
// this is the dominant cost of selecting a large table. Inputs that are
// already in canonical order are returned as they are.
func Reorder(values, weights tensor.Tensor, original, canonical []string) (tensor.Tensor, tensor.Tensor, error) {
	if values.NumDims() != len(original) {
		return nil, nil, fmt.Errorf("soltab: %d axis names for %d dimensions: %w", len(original), values.NumDims(), tensor.ErrShapeMismatch)
	}
	if err := tensor.SameShape(values, weights); err != nil {
		return nil, nil, fmt.Errorf("soltab: weights do not match values: %w", err)
	}
	perm, err := Permutation(original, canonical)
	if err != nil {
		return nil, nil, err
	}
	if tensor.IsIdentity(perm) {
		return values, weights, nil
	}
	rv, err := tensor.Transpose(values, perm...)
	if err != nil {
		return nil, nil, err
	}
	rw, err := tensor.Transpose(weights, perm...)
	if err != nil {
		return nil, nil, err
	}
	return rv, rw, nil
}
