// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"
	"slices"

	"cogentcore.org/solview/tensor"
)

// CanonicalOrder returns the canonical axis order for a table with the
// given axis names, name and declared type: [time, ant] for solutions
// without a frequency axis and [time, freq, ant] otherwise, followed by
// pol and then dir when present. An [UnsupportedAxisError] is returned
// if an axis is not part of that order, appears twice, or a required
// axis is missing.
func CanonicalOrder(present []string, name, typ string) ([]string, error) {
	return canonicalOrder(name, present, Classify(name, typ, present))
}

func canonicalOrder(table string, present []string, cls Classification) ([]string, error) {
	hasFreq := slices.Contains(present, AxisFreq)
	var order []string
	switch {
	case cls.Kind == KindNoFrequency,
		cls.Kind == KindTEC && !hasFreq,
		cls.Kind == KindScalarOffset && !hasFreq:
		order = []string{AxisTime, AxisAnt}
	default:
		order = []string{AxisTime, AxisFreq, AxisAnt}
	}
	order = append(order, ProfileOf(present).Suffix()...)

	seen := make(map[string]bool, len(present))
	for _, ax := range present {
		if seen[ax] {
			return nil, &UnsupportedAxisError{Table: table, Axis: ax, Reason: "axis appears more than once"}
		}
		seen[ax] = true
		if !slices.Contains(order, ax) {
			return nil, &UnsupportedAxisError{Table: table, Axis: ax, Reason: fmt.Sprintf("not part of canonical order %v", order)}
		}
	}
	for _, ax := range order {
		if !seen[ax] {
			return nil, &UnsupportedAxisError{Table: table, Axis: ax, Reason: "required axis is missing"}
		}
	}
	return order, nil
}

// Permutation returns the permutation that takes a tensor with axes in
// original order into canonical order: entry k is the position in
// original of the axis at position k in canonical.
func Permutation(original, canonical []string) ([]int, error) {
	if len(original) != len(canonical) {
		return nil, fmt.Errorf("%w: %v to %v", tensor.ErrBadPermutation, original, canonical)
	}
	perm := make([]int, len(canonical))
	for k, ax := range canonical {
		i := slices.Index(original, ax)
		if i < 0 {
			return nil, fmt.Errorf("%w: axis %q not in %v", tensor.ErrBadPermutation, ax, original)
		}
		perm[k] = i
	}
	if err := tensor.ValidatePermutation(perm, len(original)); err != nil {
		return nil, err
	}
	return perm, nil
}
