// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/solview/base/errors"
	"cogentcore.org/solview/tensor"
)

// Entry is a table brought into canonical axis order, ready for extraction.
type Entry struct {

	// Key is the [Table.Key] of the source table.
	Key string

	// Table is the source table, in stored order.
	Table *Table

	// Class is the classification of the table.
	Class Classification

	// Axes are the table axes in canonical order.
	Axes []Axis

	// Values are the solution values in canonical order.
	Values tensor.Tensor

	// Weights are the solution weights in canonical order.
	Weights tensor.Tensor

	// Profile is the set of trailing pol and dir axes.
	Profile Profile

	pos positions
}

// AxisNames returns the axis names in canonical order.
func (e *Entry) AxisNames() []string {
	names := make([]string, len(e.Axes))
	for i, ax := range e.Axes {
		names[i] = ax.Name
	}
	return names
}

// Axis returns the axis with the given name.
func (e *Entry) Axis(name string) (Axis, bool) {
	return findAxis(e.Axes, name)
}

// AxisLen returns the length of the named axis, or 0 if it is absent.
func (e *Entry) AxisLen(name string) int {
	d := e.pos.dim(name)
	if d < 0 {
		return 0
	}
	return e.Values.DimSize(d)
}

// AntennaIndex returns the index of the named antenna.
func (e *Entry) AntennaIndex(name string) (int, error) {
	return antennaIndex(e.Axes, name)
}

// Antennas returns the antenna names.
func (e *Entry) Antennas() []string {
	ant, _ := e.Axis(AxisAnt)
	return slices.Clone(ant.Labels)
}

// Cache holds the single most recently selected table in canonical order.
// Selecting the table that is already current does not reorder it again;
// selecting any other table replaces the entry.
type Cache struct {

	// Reorder brings a newly selected table into canonical order.
	// Nil uses [Reorder].
	Reorder ReorderFunc

	entry *Entry
}

// NewCache returns a new empty cache.
func NewCache() *Cache {
	return &Cache{Reorder: Reorder}
}

// Current returns the current entry, or nil if nothing was selected.
func (c *Cache) Current() *Entry {
	return c.entry
}

// Select makes t the current table, reordering it unless it is already
// current, and returns whether the entry changed. On error the previous
// entry stays current.
func (c *Cache) Select(t *Table) (bool, error) {
	if t == nil {
		return false, errors.New("soltab: select of nil table")
	}
	key := t.Key()
	if c.entry != nil && c.entry.Key == key {
		slog.Debug("soltab: table already current", "table", key)
		return false, nil
	}
	if err := c.replace(t); err != nil {
		return false, err
	}
	return true, nil
}

// Reload reorders t and makes it the current table even when a table
// with the same key is already current, as after the source changed.
// On error the previous entry stays current.
func (c *Cache) Reload(t *Table) error {
	if t == nil {
		return errors.New("soltab: reload of nil table")
	}
	return c.replace(t)
}

// replace builds the entry for t and swaps it in only when complete.
func (c *Cache) replace(t *Table) error {
	e, err := c.build(t)
	if err != nil {
		return err
	}
	c.entry = e
	slog.Info("soltab: reordered table", "table", e.Key, "kind", e.Class.Kind, "order", e.AxisNames())
	return nil
}

// Reset discards the current entry.
func (c *Cache) Reset() {
	c.entry = nil
}

func (c *Cache) build(t *Table) (*Entry, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	key := t.Key()
	names := t.AxisNames()
	cls := t.Classify()
	order, err := canonicalOrder(key, names, cls)
	if err != nil {
		return nil, err
	}
	weights := t.Weights
	if weights == nil {
		ones := tensor.NewFloat64(t.Values.Shape().Sizes...)
		ones.Fill(1)
		weights = ones
	}
	reorder := c.Reorder
	if reorder == nil {
		reorder = Reorder
	}
	values, weights, err := reorder(t.Values, weights, names, order)
	if err != nil {
		return nil, fmt.Errorf("soltab %s: reorder: %w", key, err)
	}
	e := &Entry{Key: key, Table: t, Class: cls, Values: values, Weights: weights}
	e.Axes = make([]Axis, len(order))
	for k, name := range order {
		e.Axes[k], _ = t.Axis(name)
	}
	e.Profile = ProfileOf(order)
	e.pos = layoutOf(slices.Contains(order, AxisFreq), e.Profile)
	return e, nil
}
