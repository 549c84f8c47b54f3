// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"cogentcore.org/solview/solset"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// sourceFlags configure the synthetic solution set the commands read.
type sourceFlags struct {
	seed                   uint64
	antennas, times, freqs int
}

func (sf *sourceFlags) add(cmd *cobra.Command) {
	def := solset.DefaultOptions()
	cmd.Flags().Uint64Var(&sf.seed, "seed", def.Seed, "seed of the synthetic solutions")
	cmd.Flags().IntVar(&sf.antennas, "ants", def.Antennas, "number of synthetic antennas")
	cmd.Flags().IntVar(&sf.times, "times", def.Times, "number of synthetic time samples")
	cmd.Flags().IntVar(&sf.freqs, "freqs", def.Freqs, "number of synthetic frequency channels")
}

// source returns the synthetic solution set.
func (sf *sourceFlags) source() (*solset.Memory, error) {
	opts := solset.DefaultOptions()
	opts.Seed, opts.Antennas, opts.Times, opts.Freqs = sf.seed, sf.antennas, sf.times, sf.freqs
	return solset.Synthesize(opts)
}

func newListCmd() *cobra.Command {
	sf := &sourceFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the solution sets and tables with their axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sf.source()
			if err != nil {
				return err
			}
			return runList(cmd, src)
		},
	}
	sf.add(cmd)
	return cmd
}

func runList(cmd *cobra.Command, src solset.Source) error {
	out := termenv.NewOutput(cmd.OutOrStdout())
	for _, ss := range src.Solsets() {
		fmt.Fprintln(out, out.String(ss).Bold().String())
		names, err := src.Soltabs(ss)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  table\ttype\tkind\tstored axes\tshape")
		for _, name := range names {
			t, err := src.Soltab(ss, name)
			if err != nil {
				return err
			}
			sizes := make([]string, len(t.Axes))
			for i, ax := range t.Axes {
				sizes[i] = fmt.Sprint(ax.Len())
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", name, t.Type, t.Classify().Kind,
				strings.Join(t.AxisNames(), ","), strings.Join(sizes, "x"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if dirs, err := src.Directions(ss); err == nil && len(dirs) > 0 {
			fmt.Fprintf(out, "  directions: %s\n", strings.Join(dirs, " "))
		}
	}
	return nil
}
