// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solset provides the solution sets and tables that the
// viewer browses, through the [Source] interface.
package solset

import (
	"fmt"
	"slices"

	"cogentcore.org/solview/base/errors"
	"cogentcore.org/solview/base/keylist"
	"cogentcore.org/solview/soltab"
)

// ErrNotFound is returned for a solution set or table that does not exist.
var ErrNotFound = errors.New("solset: not found")

// Source is a container of named solution sets, each holding named
// solution tables.
type Source interface {

	// Solsets returns the names of the solution sets, in stored order.
	Solsets() []string

	// Soltabs returns the names of the tables of a solution set.
	Soltabs(solset string) ([]string, error)

	// Soltab returns a table of a solution set.
	Soltab(solset, name string) (*soltab.Table, error)

	// Directions returns the direction names of a solution set.
	Directions(solset string) ([]string, error)
}

// set is one solution set of a [Memory].
type set struct {
	tables *keylist.List[string, *soltab.Table]
	dirs   []string
}

// Memory is a [Source] holding its tables in memory.
type Memory struct {
	sets keylist.List[string, *set]
}

// NewMemory returns a new empty [Memory].
func NewMemory() *Memory {
	return &Memory{}
}

// AddSolset adds a new empty solution set with the given direction names.
func (m *Memory) AddSolset(name string, directions ...string) error {
	return m.sets.Add(name, &set{tables: keylist.New[string, *soltab.Table](), dirs: directions})
}

// AddSoltab adds a validated table to the solution set named by
// its Solset field, which is created as needed.
func (m *Memory) AddSoltab(t *soltab.Table) error {
	if t.Solset == "" || t.Name == "" {
		return fmt.Errorf("solset: table needs a solset and a name, got %q", t.Key())
	}
	if err := t.Validate(); err != nil {
		return err
	}
	ss, ok := m.sets.At(t.Solset)
	if !ok {
		if err := m.AddSolset(t.Solset); err != nil {
			return err
		}
		ss, _ = m.sets.At(t.Solset)
	}
	return ss.tables.Add(t.Name, t)
}

// Solsets returns the names of the solution sets.
func (m *Memory) Solsets() []string {
	return slices.Clone(m.sets.Keys)
}

func (m *Memory) set(name string) (*set, error) {
	ss, ok := m.sets.At(name)
	if !ok {
		return nil, fmt.Errorf("%w: solset %q", ErrNotFound, name)
	}
	return ss, nil
}

// Soltabs returns the table names of a solution set.
func (m *Memory) Soltabs(solset string) ([]string, error) {
	ss, err := m.set(solset)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ss.tables.Keys), nil
}

// Soltab returns a table of a solution set.
func (m *Memory) Soltab(solset, name string) (*soltab.Table, error) {
	ss, err := m.set(solset)
	if err != nil {
		return nil, err
	}
	t, ok := ss.tables.At(name)
	if !ok {
		return nil, fmt.Errorf("%w: soltab %s/%s", ErrNotFound, solset, name)
	}
	return t, nil
}

// Directions returns the direction names of a solution set: those given
// to [Memory.AddSolset] or, if none were, the union of the direction axes
// of its tables in order of appearance.
func (m *Memory) Directions(solset string) ([]string, error) {
	ss, err := m.set(solset)
	if err != nil {
		return nil, err
	}
	if len(ss.dirs) > 0 {
		return slices.Clone(ss.dirs), nil
	}
	var dirs []string
	for _, t := range ss.tables.Values {
		ax, ok := t.Axis(soltab.AxisDir)
		if !ok {
			continue
		}
		for i := range ax.Len() {
			if d := ax.Label(i); !slices.Contains(dirs, d) {
				dirs = append(dirs, d)
			}
		}
	}
	return dirs, nil
}

// RemoveSoltab removes a table from a solution set.
func (m *Memory) RemoveSoltab(solset, name string) error {
	ss, err := m.set(solset)
	if err != nil {
		return err
	}
	if !ss.tables.DeleteByKey(name) {
		return fmt.Errorf("%w: soltab %s/%s", ErrNotFound, solset, name)
	}
	return nil
}
