// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solset

import (
	"fmt"
	"math"

	"cogentcore.org/solview/soltab"
	"cogentcore.org/solview/tensor"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Options configure [Synthesize].
type Options struct {

	// Solset is the name of the generated solution set.
	Solset string

	// Antennas is the number of antennas; the first half are core
	// stations, the rest remote stations.
	Antennas int

	// Times is the number of time samples, 10 s apart.
	Times int

	// Freqs is the number of frequency channels, 2 MHz apart from 120 MHz.
	Freqs int

	// Pols are the polarization labels.
	Pols []string

	// Directions are the direction labels.
	Directions []string

	// Noise is the standard deviation of the noise added to phases,
	// in radians. Amplitude noise is a tenth of it.
	Noise float64

	// Flagged is the fraction of samples given a zero weight.
	Flagged float64

	// Seed seeds the noise and flagging.
	Seed uint64
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Solset:     "sol000",
		Antennas:   6,
		Times:      24,
		Freqs:      8,
		Pols:       []string{"XX", "YY"},
		Directions: []string{"[Patch_0]", "[Patch_1]"},
		Noise:      0.1,
		Flagged:    0.05,
		Seed:       1,
	}
}

const (
	startTime = 4.87e9
	timeStep  = 10.0
	startFreq = 120e6
	freqStep  = 2e6

	// tecPhase is the phase in radians of one TEC unit at 1 Hz.
	tecPhase = -8.44797245e9
)

// coord is the index of one element along each named axis.
type coord struct {
	time, freq, ant, pol, dir int
}

// model produces the synthetic solutions.
type model struct {
	opts    Options
	times   []float64
	freqs   []float64
	noise   distuv.Normal
	flagged distuv.Bernoulli
}

// Synthesize returns a solution set laid out the way calibration
// pipelines write direction-dependent solutions: amplitude000 and
// phase000 stored as [pol, dir, ant, freq, time], tec000 and
// phase_offset000 as [ant, dir, time], and clock000 as [time, ant].
// Phases follow a TEC and clock model per antenna and direction,
// so that they wrap across the band for remote stations.
func Synthesize(opts Options) (*Memory, error) {
	if opts.Antennas < 1 || opts.Times < 1 || opts.Freqs < 1 || len(opts.Pols) < 1 || len(opts.Directions) < 1 {
		return nil, fmt.Errorf("solset: cannot synthesize %d antennas, %d times, %d freqs, %d pols, %d directions",
			opts.Antennas, opts.Times, opts.Freqs, len(opts.Pols), len(opts.Directions))
	}
	src := rand.NewSource(opts.Seed)
	md := &model{
		opts:    opts,
		noise:   distuv.Normal{Mu: 0, Sigma: opts.Noise, Src: src},
		flagged: distuv.Bernoulli{P: opts.Flagged, Src: src},
	}
	md.times = make([]float64, opts.Times)
	for i := range md.times {
		md.times[i] = startTime + timeStep*float64(i)
	}
	md.freqs = make([]float64, opts.Freqs)
	for i := range md.freqs {
		md.freqs[i] = startFreq + freqStep*float64(i)
	}

	ant := soltab.NewLabelAxis(soltab.AxisAnt, AntennaNames(opts.Antennas)...)
	tm := soltab.NewAxis(soltab.AxisTime, md.times...)
	fq := soltab.NewAxis(soltab.AxisFreq, md.freqs...)
	pol := soltab.NewLabelAxis(soltab.AxisPol, opts.Pols...)
	dir := soltab.NewLabelAxis(soltab.AxisDir, opts.Directions...)

	m := NewMemory()
	if err := m.AddSolset(opts.Solset, opts.Directions...); err != nil {
		return nil, err
	}
	tables := []*soltab.Table{
		md.table("amplitude000", "amplitude", []soltab.Axis{pol, dir, ant, fq, tm}, md.amplitude),
		md.table("phase000", "phase", []soltab.Axis{pol, dir, ant, fq, tm}, md.phase),
		md.table("tec000", "tec", []soltab.Axis{ant, dir, tm}, md.tec),
		md.table("phase_offset000", "phase", []soltab.Axis{ant, dir, tm}, md.offset),
		md.table("clock000", "clock", []soltab.Axis{tm, ant}, md.clockValue),
	}
	for _, t := range tables {
		if err := m.AddSoltab(t); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AntennaNames returns n station names, core stations first.
func AntennaNames(n int) []string {
	names := make([]string, n)
	ncore := (n + 1) / 2
	for i := range names {
		if i < ncore {
			names[i] = fmt.Sprintf("CS%03dHBA0", i+1)
		} else {
			names[i] = fmt.Sprintf("RS%03dHBA", 100+i-ncore+6)
		}
	}
	return names
}

// table returns a table with values from fn and noisy flags.
func (md *model) table(name, typ string, axes []soltab.Axis, fn func(c coord) float64) *soltab.Table {
	sizes := make([]int, len(axes))
	for i, ax := range axes {
		sizes[i] = ax.Len()
	}
	values := tensor.NewFloat64(sizes...)
	weights := tensor.NewFloat64(sizes...)
	for i := range values.Values {
		c := coordOf(axes, values.Shape().IndexFrom1D(i))
		values.Values[i] = fn(c)
		weights.Values[i] = 1 - md.flagged.Rand()
	}
	return &soltab.Table{
		Solset:  md.opts.Solset,
		Name:    name,
		Type:    typ,
		Axes:    axes,
		Values:  values,
		Weights: weights,
	}
}

func coordOf(axes []soltab.Axis, index []int) coord {
	var c coord
	for d, ax := range axes {
		switch ax.Name {
		case soltab.AxisTime:
			c.time = index[d]
		case soltab.AxisFreq:
			c.freq = index[d]
		case soltab.AxisAnt:
			c.ant = index[d]
		case soltab.AxisPol:
			c.pol = index[d]
		case soltab.AxisDir:
			c.dir = index[d]
		}
	}
	return c
}

// remote is 1 for remote stations, which see larger delays.
func (md *model) remote(ant int) float64 {
	if ant >= (md.opts.Antennas+1)/2 {
		return 1
	}
	return 0
}

func (md *model) tec(c coord) float64 {
	t := float64(c.time) / float64(md.opts.Times)
	scale := 0.002 + 0.02*md.remote(c.ant)
	return scale * float64(c.ant+1) * math.Sin(2*math.Pi*t+float64(c.dir))
}

func (md *model) clock(c coord) float64 {
	return 1e-9 * (float64(c.ant) + 2*md.remote(c.ant)) * (1 + 0.1*float64(c.time)/float64(md.opts.Times))
}

func (md *model) clockValue(c coord) float64 {
	return md.clock(c) + md.noise.Rand()*1e-11
}

func (md *model) offset(c coord) float64 {
	return 0.3*float64(c.ant) - 0.1*float64(c.dir) + md.noise.Rand()
}

func (md *model) phase(c coord) float64 {
	nu := md.freqs[c.freq]
	ph := tecPhase*md.tec(c)/nu + 2*math.Pi*nu*md.clock(c)
	ph += 0.05 * float64(c.pol)
	return ph + md.noise.Rand()
}

func (md *model) amplitude(c coord) float64 {
	nu := md.freqs[c.freq]
	return 1 + 0.2*math.Cos(float64(c.ant)+nu/50e6) - 0.05*float64(c.pol) + 0.1*md.noise.Rand()
}
