// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"cogentcore.org/solview/soltab"
	"cogentcore.org/solview/viewer"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// plotFlags are the selection flags of the plot command.
type plotFlags struct {
	solset, table        string
	antenna, refAntenna  string
	abscissa, direction  string
	pol, slot            int
	tdiff, fdiff, pdiff  bool
	weights, noWrap, all bool
}

func newPlotCmd(opts *options) *cobra.Command {
	sf := &sourceFlags{}
	pf := &plotFlags{}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Print the slice of a table the viewer would plot",
		Example: `  solview plot --table phase000 --ant RS107HBA --refant CS002HBA0
  solview plot --table amplitude000 --axis waterfall --all --pdiff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sf.source()
			if err != nil {
				return err
			}
			settings := *opts.settings
			fl := cmd.Flags()
			if fl.Changed("solset") {
				settings.Solset = pf.solset
			}
			if fl.Changed("table") {
				settings.Table = pf.table
			}
			if fl.Changed("refant") {
				settings.RefAntenna = pf.refAntenna
			}
			if fl.Changed("axis") {
				settings.Abscissa = pf.abscissa
			}
			if pf.noWrap {
				settings.WrapPhase = false
			}
			if pf.weights {
				settings.Mode = soltab.ModeWeights.String()
			}
			v, err := viewer.New(src, &settings)
			if err != nil {
				return err
			}
			return runPlot(cmd, v, pf)
		},
	}
	sf.add(cmd)
	f := cmd.Flags()
	f.StringVar(&pf.solset, "solset", "", "solution set; default the first one")
	f.StringVar(&pf.table, "table", "", "table; default the first one")
	f.StringVar(&pf.antenna, "ant", "", "antenna name; default the first one")
	f.StringVar(&pf.refAntenna, "refant", "", "reference antenna name for phases")
	f.StringVar(&pf.abscissa, "axis", "time", "plot axis: time, freq or waterfall")
	f.StringVar(&pf.direction, "dir", "", "direction name")
	f.IntVar(&pf.pol, "pol", soltab.PolAll, "polarization index of a waterfall")
	f.IntVar(&pf.slot, "slot", 0, "index along the axis that is not plotted")
	f.BoolVar(&pf.tdiff, "tdiff", false, "difference consecutive times")
	f.BoolVar(&pf.fdiff, "fdiff", false, "difference consecutive frequencies")
	f.BoolVar(&pf.pdiff, "pdiff", false, "difference the first and last polarization")
	f.BoolVar(&pf.weights, "weights", false, "print weights instead of values")
	f.BoolVar(&pf.noWrap, "no-wrap", false, "do not wrap phases")
	f.BoolVar(&pf.all, "all", false, "print the waterfalls of all antennas")
	return cmd
}

func runPlot(cmd *cobra.Command, v *viewer.Viewer, pf *plotFlags) error {
	if pf.antenna != "" {
		if err := v.SetAntenna(pf.antenna); err != nil {
			return err
		}
	}
	if pf.direction != "" {
		if err := v.SetDirection(pf.direction); err != nil {
			return err
		}
	}
	v.Selection.Pol = pf.pol
	v.Selection.Slot = pf.slot
	v.Selection.Diff = soltab.DiffFlags{Time: pf.tdiff, Freq: pf.fdiff, Pol: pf.pdiff}

	out := termenv.NewOutput(cmd.OutOrStdout())
	if pf.all {
		plots, err := v.PlotAll()
		if err != nil {
			return err
		}
		for _, p := range plots {
			if err := printPlot(out, v, p); err != nil {
				return err
			}
		}
		return nil
	}
	p, err := v.Plot()
	if err != nil {
		return err
	}
	return printPlot(out, v, p)
}

// printPlot writes a plot as a header line and a table of numbers.
// Zero-weight samples are shown faint.
func printPlot(out *termenv.Output, v *viewer.Viewer, p *viewer.Plot) error {
	head := fmt.Sprintf("%s  antenna %s", p.Table, p.Antenna)
	if p.RefAntenna != "" {
		head += "  ref " + p.RefAntenna
	}
	head += "  " + p.Mode.String()
	if sr := p.Series; sr != nil && sr.HasMultipleSlots {
		head += fmt.Sprintf("  slot %d/%d", sr.Slot+1, v.Slots())
	}
	fmt.Fprintln(out, out.String(head).Bold().String())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	if p.Series != nil {
		writeSeries(tw, out, p.Series, p.Mode)
	} else {
		writeWaterfall(tw, out, p.Waterfall, p.Mode)
	}
	return tw.Flush()
}

func writeSeries(w io.Writer, out *termenv.Output, sr *soltab.Series, mode soltab.Mode) {
	fmt.Fprint(w, sr.Abscissa.String(), "\t")
	for _, lb := range sr.Labels {
		fmt.Fprint(w, lb, "\t")
	}
	fmt.Fprintln(w)
	for i, x := range sr.X {
		fmt.Fprint(w, strconv.FormatFloat(x, 'g', 10, 64), "\t")
		for k := range sr.Y {
			fmt.Fprint(w, cell(out, sr.Y[k][i], sr.Weights[k][i], mode), "\t")
		}
		fmt.Fprintln(w)
	}
}

func writeWaterfall(w io.Writer, out *termenv.Output, wf *soltab.Waterfall, mode soltab.Mode) {
	fmt.Fprintf(w, "%s time\\MHz\t", wf.Label)
	for _, f := range wf.Freqs {
		fmt.Fprint(w, strconv.FormatFloat(f/1e6, 'f', 2, 64), "\t")
	}
	fmt.Fprintln(w)
	for i, t := range wf.Times {
		fmt.Fprint(w, strconv.FormatFloat(t, 'g', 10, 64), "\t")
		for j := range wf.Freqs {
			fmt.Fprint(w, cell(out, wf.Z.At(i, j), wf.ZWeight.At(i, j), mode), "\t")
		}
		fmt.Fprintln(w)
	}
}

// cell formats a value, or its weight in weights mode.
func cell(out *termenv.Output, v, w float64, mode soltab.Mode) string {
	if mode == soltab.ModeWeights {
		return strconv.FormatFloat(w, 'f', 2, 64)
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	if w == 0 {
		return out.String(s).Faint().String()
	}
	return s
}
