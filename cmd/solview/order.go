// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/solview/soltab"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newOrderCmd() *cobra.Command {
	var name, typ string
	cmd := &cobra.Command{
		Use:   "order [axis...]",
		Short: "Show the classification and canonical axis order of a table",
		Example: `  solview order --name phase000 --type phase pol dir ant freq time
  solview order --name clock000 --type clock ant time`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, name, typ, args)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "table name, e.g. phase000")
	cmd.Flags().StringVar(&typ, "type", "", "declared solution type, e.g. phase")
	cmd.MarkFlagRequired("name")
	return cmd
}

func runOrder(cmd *cobra.Command, name, typ string, axes []string) error {
	out := termenv.NewOutput(cmd.OutOrStdout())
	cls := soltab.Classify(name, typ, axes)
	canonical, err := soltab.CanonicalOrder(axes, name, typ)
	if err != nil {
		return err
	}
	perm, err := soltab.Permutation(axes, canonical)
	if err != nil {
		return err
	}
	bold := func(s string) string { return out.String(s).Bold().String() }
	fmt.Fprintf(out, "%s %s\n", bold("table:"), name)
	fmt.Fprintf(out, "%s %s\n", bold("kind:"), cls.Kind)
	fmt.Fprintf(out, "%s freq=%t phase-referencing=%t 2d=%t\n", bold("supports:"),
		cls.SupportsFrequencyAxis, cls.SupportsPhaseReferencing, cls.Supports2D)
	fmt.Fprintf(out, "%s %v\n", bold("stored:"), axes)
	fmt.Fprintf(out, "%s %v\n", bold("canonical:"), canonical)
	fmt.Fprintf(out, "%s %v\n", bold("permutation:"), perm)
	fmt.Fprintf(out, "%s %s\n", bold("profile:"), soltab.ProfileOf(canonical))
	return nil
}
