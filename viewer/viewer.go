// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer holds the selection state of the solution viewer and
// produces the plots for it from a [solset.Source].
package viewer

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/solview/base/errors"
	"cogentcore.org/solview/config"
	"cogentcore.org/solview/soltab"
	"cogentcore.org/solview/solset"
)

// Plot is the data for one plot.
type Plot struct {

	// Table is the key of the plotted table.
	Table string

	// Antenna is the name of the plotted antenna.
	Antenna string

	// RefAntenna is the name of the reference antenna,
	// for phase plots.
	RefAntenna string

	// Mode is whether values or weights are plotted.
	Mode soltab.Mode

	// Series is set for time and frequency plots.
	Series *soltab.Series

	// Waterfall is set for waterfall plots.
	Waterfall *soltab.Waterfall
}

// Viewer is the state of the solution viewer: the current solution set,
// table and selection. The selected table is kept in canonical order in
// Cache, so that changing the selection does not reorder it again.
type Viewer struct {

	// Source provides the solution sets and tables.
	Source solset.Source

	// Cache holds the selected table in canonical order.
	Cache *soltab.Cache

	// Selection is the current selection, which callers may
	// change directly between plots.
	Selection soltab.Selection

	solset   string
	table    string
	refName  string
	antennas []string
}

// New returns a new viewer on src with the given settings,
// selecting the configured or first solution set and table.
func New(src solset.Source, settings *config.Settings) (*Viewer, error) {
	if settings == nil {
		settings = config.Defaults()
	}
	sel, err := settings.Selection()
	if err != nil {
		return nil, err
	}
	v := &Viewer{Source: src, Cache: soltab.NewCache(), Selection: sel, refName: settings.RefAntenna}
	sets := src.Solsets()
	if len(sets) == 0 {
		return nil, fmt.Errorf("viewer: %w: no solution sets", solset.ErrNotFound)
	}
	name := settings.Solset
	if name == "" {
		name = sets[0]
	}
	if err := v.SelectSolset(name); err != nil {
		return nil, err
	}
	if settings.Table != "" {
		if err := v.SelectTable(settings.Table); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Solset returns the name of the current solution set.
func (v *Viewer) Solset() string { return v.solset }

// Table returns the name of the current table.
func (v *Viewer) Table() string { return v.table }

// Entry returns the current table in canonical order.
func (v *Viewer) Entry() *soltab.Entry { return v.Cache.Current() }

// Antennas returns the antenna names of the current table.
func (v *Viewer) Antennas() []string { return slices.Clone(v.antennas) }

// RefAntenna returns the name of the reference antenna.
func (v *Viewer) RefAntenna() string { return v.refName }

// Soltabs returns the table names of the current solution set.
func (v *Viewer) Soltabs() ([]string, error) {
	return v.Source.Soltabs(v.solset)
}

// Directions returns the direction names of the current solution set.
func (v *Viewer) Directions() ([]string, error) {
	return v.Source.Directions(v.solset)
}

// SelectSolset makes name the current solution set and selects its
// first table. Selecting the current solution set does nothing.
func (v *Viewer) SelectSolset(name string) error {
	if name == v.solset && v.Entry() != nil {
		slog.Debug("viewer: solution set already current", "solset", name)
		return nil
	}
	tabs, err := v.Source.Soltabs(name)
	if err != nil {
		return err
	}
	if len(tabs) == 0 {
		return fmt.Errorf("viewer: %w: solution set %q has no tables", solset.ErrNotFound, name)
	}
	prev := v.solset
	v.solset = name
	if err := v.SelectTable(tabs[0]); err != nil {
		v.solset = prev
		return err
	}
	v.Selection.Direction = 0
	return nil
}

// SelectTable makes the named table of the current solution set current,
// bringing it into canonical order unless it already is current.
// The selected antenna, and the reference antenna by name, carry over
// to the new table when it has them.
func (v *Viewer) SelectTable(name string) error {
	t, err := v.Source.Soltab(v.solset, name)
	if err != nil {
		return err
	}
	changed, err := v.Cache.Select(t)
	if err != nil {
		return err
	}
	v.table = name
	if changed {
		v.refreshAntennas()
	}
	return nil
}

// Refresh reads the current table from the source again,
// picking up any change to its antenna list. If the table can no
// longer be read or reordered, the previous one stays current.
func (v *Viewer) Refresh() error {
	t, err := v.Source.Soltab(v.solset, v.table)
	if err != nil {
		return err
	}
	if err := v.Cache.Reload(t); err != nil {
		return err
	}
	v.refreshAntennas()
	return nil
}

// refreshAntennas updates the antenna list from the current table,
// keeping the selected antenna by name or else selecting the first one,
// re-resolving the reference antenna, and keeps the other indexes within
// the new axes.
func (v *Viewer) refreshAntennas() {
	e := v.Entry()
	var antName string
	if a := v.Selection.Antenna; a >= 0 && a < len(v.antennas) {
		antName = v.antennas[a]
	}
	v.antennas = e.Antennas()
	v.Selection.Antenna = max(slices.Index(v.antennas, antName), 0)

	v.Selection.RefAntenna = 0
	if v.refName != "" {
		i, err := e.AntennaIndex(v.refName)
		if err != nil {
			slog.Warn("viewer: reference antenna not in table, using the first antenna", "table", e.Key, "err", err)
		} else {
			v.Selection.RefAntenna = i
		}
	}

	v.Selection.Direction = clamp(v.Selection.Direction, e.AxisLen(soltab.AxisDir))
	if v.Selection.Pol != soltab.PolAll {
		v.Selection.Pol = clamp(v.Selection.Pol, e.AxisLen(soltab.AxisPol))
	}
	v.Selection.Slot = clamp(v.Selection.Slot, v.Slots())
}

// clamp returns i if it is in [0, n) and 0 otherwise.
func clamp(i, n int) int {
	if i < 0 || i >= n {
		return 0
	}
	return i
}

// SetAntenna selects the named antenna.
func (v *Viewer) SetAntenna(name string) error {
	i := slices.Index(v.antennas, name)
	if i < 0 {
		msg := fmt.Sprintf("viewer: antenna %q not found", name)
		if s := soltab.Suggest(name, v.antennas); s != "" {
			msg += fmt.Sprintf("; did you mean %q?", s)
		}
		return errors.New(msg)
	}
	v.Selection.Antenna = i
	return nil
}

// SetReferenceAntenna sets the reference antenna by name, which is kept
// across table changes.
func (v *Viewer) SetReferenceAntenna(name string) error {
	e := v.Entry()
	if e == nil {
		return errors.New("viewer: no table selected")
	}
	i, err := e.AntennaIndex(name)
	if err != nil {
		return err
	}
	v.refName = name
	v.Selection.RefAntenna = i
	return nil
}

// SetDirection selects the named direction of the current table.
func (v *Viewer) SetDirection(name string) error {
	e := v.Entry()
	if e == nil {
		return errors.New("viewer: no table selected")
	}
	ax, ok := e.Axis(soltab.AxisDir)
	if !ok {
		return &soltab.UnsupportedAxisError{Table: e.Key, Axis: soltab.AxisDir, Reason: "table has no directions"}
	}
	i := slices.Index(ax.Labels, name)
	if i < 0 {
		return fmt.Errorf("viewer: direction %q not in table %s", name, e.Key)
	}
	v.Selection.Direction = i
	return nil
}

// Slots returns the number of samples along the axis that is not
// plotted: frequencies for time plots and times for frequency plots.
func (v *Viewer) Slots() int {
	e := v.Entry()
	if e == nil {
		return 0
	}
	switch v.Selection.Abscissa {
	case soltab.AbscissaTime:
		return max(e.AxisLen(soltab.AxisFreq), 1)
	case soltab.AbscissaFreq:
		return e.AxisLen(soltab.AxisTime)
	}
	return 1
}

// Step moves the slot by delta, returning false without moving
// if that would leave the axis.
func (v *Viewer) Step(delta int) bool {
	s := v.Selection.Slot + delta
	if s < 0 || s >= v.Slots() {
		return false
	}
	v.Selection.Slot = s
	return true
}

// Plot returns the plot for the current selection. Tables or selections
// that cannot be plotted are logged as warnings and other errors as
// errors; both are returned.
func (v *Viewer) Plot() (*Plot, error) {
	e := v.Entry()
	if e == nil {
		return nil, errors.New("viewer: no table selected")
	}
	p, err := v.plot(e, v.Selection)
	if err != nil {
		v.report(err)
		return nil, err
	}
	return p, nil
}

// PlotAll returns the waterfall plots of every antenna.
func (v *Viewer) PlotAll() ([]*Plot, error) {
	e := v.Entry()
	if e == nil {
		return nil, errors.New("viewer: no table selected")
	}
	if v.Selection.Abscissa != soltab.AbscissaWaterfall {
		err := &soltab.UnsupportedAxisError{Table: e.Key, Axis: v.Selection.Abscissa.String(), Reason: "plotting all antennas needs a waterfall"}
		v.report(err)
		return nil, err
	}
	plots := make([]*Plot, 0, len(v.antennas))
	for i := range v.antennas {
		sel := v.Selection
		sel.Antenna = i
		p, err := v.plot(e, sel)
		if err != nil {
			v.report(err)
			return nil, err
		}
		plots = append(plots, p)
	}
	return plots, nil
}

func (v *Viewer) plot(e *soltab.Entry, sel soltab.Selection) (*Plot, error) {
	p := &Plot{Table: e.Key, Mode: sel.Mode}
	if sel.Antenna >= 0 && sel.Antenna < len(v.antennas) {
		p.Antenna = v.antennas[sel.Antenna]
	}
	if e.Class.SupportsPhaseReferencing && sel.RefAntenna >= 0 && sel.RefAntenna < len(v.antennas) {
		p.RefAntenna = v.antennas[sel.RefAntenna]
	}
	var err error
	if sel.Abscissa == soltab.AbscissaWaterfall {
		p.Waterfall, err = soltab.Extract2D(e, sel)
	} else {
		p.Series, err = soltab.Extract1D(e, sel)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// report logs a plot error.
func (v *Viewer) report(err error) {
	if soltab.IsRecoverable(err) {
		slog.Warn("viewer: nothing to plot", "err", err)
		return
	}
	errors.Log(err)
}
