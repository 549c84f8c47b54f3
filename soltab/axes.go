// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soltab

import (
	"slices"
	"strconv"
)

// Axis names used by calibration solution tables.
const (
	AxisTime = "time"
	AxisFreq = "freq"
	AxisAnt  = "ant"
	AxisPol  = "pol"
	AxisDir  = "dir"
)

// Axis is one named dimension of a [Table] with its coordinate values.
// Time and frequency axes have numerical Values; antenna, polarization
// and direction axes have string Labels.
type Axis struct {

	// Name is the semantic name of the axis, e.g. [AxisTime].
	Name string

	// Values are the numerical coordinates, e.g. timestamps or frequencies.
	Values []float64

	// Labels are the string coordinates, e.g. antenna names.
	Labels []string
}

// NewAxis returns a new numerical axis with the given coordinate values.
func NewAxis(name string, values ...float64) Axis {
	return Axis{Name: name, Values: values}
}

// NewLabelAxis returns a new axis with the given coordinate labels.
func NewLabelAxis(name string, labels ...string) Axis {
	return Axis{Name: name, Labels: labels}
}

// Len returns the number of coordinates along the axis.
func (ax Axis) Len() int {
	if ax.Values != nil {
		return len(ax.Values)
	}
	return len(ax.Labels)
}

// Label returns the label of coordinate i, formatting
// numerical coordinates as needed.
func (ax Axis) Label(i int) string {
	if ax.Values != nil {
		return strconv.FormatFloat(ax.Values[i], 'g', -1, 64)
	}
	return ax.Labels[i]
}

// Floats returns a copy of the numerical coordinates of the axis,
// or the coordinate indexes for a label axis.
func (ax Axis) Floats() []float64 {
	if ax.Values != nil {
		return slices.Clone(ax.Values)
	}
	fs := make([]float64, len(ax.Labels))
	for i := range fs {
		fs[i] = float64(i)
	}
	return fs
}

// Profile is the set of optional trailing axes a table carries
// after its time, frequency and antenna axes.
type Profile int32

const (
	// ProfileNone has neither a polarization nor a direction axis.
	ProfileNone Profile = iota

	// ProfilePol has a polarization axis only.
	ProfilePol

	// ProfileDir has a direction axis only.
	ProfileDir

	// ProfilePolDir has both a polarization and a direction axis.
	ProfilePolDir
)

// ProfileOf returns the profile of the given set of axis names.
func ProfileOf(axes []string) Profile {
	pol := slices.Contains(axes, AxisPol)
	dir := slices.Contains(axes, AxisDir)
	switch {
	case pol && dir:
		return ProfilePolDir
	case pol:
		return ProfilePol
	case dir:
		return ProfileDir
	}
	return ProfileNone
}

// Suffix returns the trailing axes of the profile in canonical order.
func (p Profile) Suffix() []string {
	switch p {
	case ProfilePol:
		return []string{AxisPol}
	case ProfileDir:
		return []string{AxisDir}
	case ProfilePolDir:
		return []string{AxisPol, AxisDir}
	}
	return nil
}

func (p Profile) String() string {
	switch p {
	case ProfilePol:
		return "pol"
	case ProfileDir:
		return "dir"
	case ProfilePolDir:
		return "pol+dir"
	}
	return "none"
}

// positions holds the dimension of each axis in canonical order,
// with -1 for an absent axis.
type positions struct {
	time, freq, ant, pol, dir int
}

// layoutOf returns the canonical dimension of each axis.
func layoutOf(hasFreq bool, p Profile) positions {
	ps := positions{time: 0, freq: -1, ant: 1, pol: -1, dir: -1}
	if hasFreq {
		ps.freq, ps.ant = 1, 2
	}
	switch p {
	case ProfilePol:
		ps.pol = ps.ant + 1
	case ProfileDir:
		ps.dir = ps.ant + 1
	case ProfilePolDir:
		ps.pol, ps.dir = ps.ant+1, ps.ant+2
	}
	return ps
}

// dim returns the canonical dimension of the named axis.
func (ps positions) dim(axis string) int {
	switch axis {
	case AxisTime:
		return ps.time
	case AxisFreq:
		return ps.freq
	case AxisAnt:
		return ps.ant
	case AxisPol:
		return ps.pol
	case AxisDir:
		return ps.dir
	}
	return -1
}
