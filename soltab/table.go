// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"

	"cogentcore.org/solview/tensor"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for an antenna
// name to be offered as a suggestion for a name that was not found.
const suggestThreshold = 0.7

// Table is a solution table as read from a solution set: a values tensor
// and a weights tensor of identical shape, with one [Axis] per dimension
// in the order the producer wrote them.
type Table struct {

	// Solset is the name of the solution set holding the table.
	Solset string

	// Name is the table name, e.g. phase000.
	Name string

	// Type is the declared solution type, e.g. phase or amplitude.
	Type string

	// Axes are the table axes, in the same order as the tensor dimensions.
	Axes []Axis

	// Values are the solution values.
	Values tensor.Tensor

	// Weights are the solution weights, with the same shape as Values.
	// Nil weights are treated as all ones.
	Weights tensor.Tensor
}

// Key returns the key identifying the table across solution sets.
func (t *Table) Key() string {
	if t.Solset == "" {
		return t.Name
	}
	return t.Solset + "/" + t.Name
}

// AxisNames returns the names of the axes in stored order.
func (t *Table) AxisNames() []string {
	names := make([]string, len(t.Axes))
	for i, ax := range t.Axes {
		names[i] = ax.Name
	}
	return names
}

// Axis returns the axis with the given name.
func (t *Table) Axis(name string) (Axis, bool) {
	return findAxis(t.Axes, name)
}

// Classify returns the classification of the table.
func (t *Table) Classify() Classification {
	return Classify(t.Name, t.Type, t.AxisNames())
}

// AntennaIndex returns the index of the named antenna on the antenna axis.
func (t *Table) AntennaIndex(name string) (int, error) {
	return antennaIndex(t.Axes, name)
}

// Validate checks that the axes describe the values and weights tensors.
func (t *Table) Validate() error {
	if t.Values == nil {
		return fmt.Errorf("soltab %s: no values", t.Key())
	}
	if len(t.Axes) != t.Values.NumDims() {
		return fmt.Errorf("soltab %s: %d axes for %d dimensions: %w", t.Key(), len(t.Axes), t.Values.NumDims(), tensor.ErrShapeMismatch)
	}
	for i, ax := range t.Axes {
		if ax.Len() != t.Values.DimSize(i) {
			return fmt.Errorf("soltab %s: axis %q has %d coordinates for %d values: %w", t.Key(), ax.Name, ax.Len(), t.Values.DimSize(i), tensor.ErrShapeMismatch)
		}
	}
	if t.Weights != nil {
		if err := tensor.SameShape(t.Values, t.Weights); err != nil {
			return fmt.Errorf("soltab %s: weights: %w", t.Key(), err)
		}
	}
	return nil
}

func findAxis(axes []Axis, name string) (Axis, bool) {
	for _, ax := range axes {
		if ax.Name == name {
			return ax, true
		}
	}
	return Axis{}, false
}

// antennaIndex returns the index of the named antenna, or a
// [MissingReferenceAntennaError] with the closest name as suggestion.
func antennaIndex(axes []Axis, name string) (int, error) {
	ant, ok := findAxis(axes, AxisAnt)
	if !ok {
		return -1, &MissingReferenceAntennaError{Name: name, Index: -1}
	}
	for i, lb := range ant.Labels {
		if lb == name {
			return i, nil
		}
	}
	return -1, &MissingReferenceAntennaError{Name: name, Index: -1, Suggestion: Suggest(name, ant.Labels)}
}

// Suggest returns the candidate most similar to name,
// or "" if none is similar enough.
func Suggest(name string, candidates []string) string {
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	best, bestSim := "", 0.0
	for _, c := range candidates {
		if sim := strutil.Similarity(name, c, jw); sim > bestSim {
			best, bestSim = c, sim
		}
	}
	if bestSim < suggestThreshold {
		return ""
	}
	return best
}
