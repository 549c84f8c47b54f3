// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command solview inspects calibration solution tables: it shows how
// a table is classified and reordered, and prints the slices the
// viewer would plot for a selection.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/solview/base/logx"
	"cogentcore.org/solview/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the persistent flags and the settings they load.
type options struct {
	configFile                  string
	veryVerbose, verbose, quiet bool

	settings *config.Settings
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "solview",
		Short:        "Inspect calibration solution tables",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "settings file (.toml or .yaml); default "+config.DefaultFile)
	pf.BoolVar(&opts.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "log errors only")

	root.AddCommand(newOrderCmd(), newListCmd(), newPlotCmd(opts))
	return root
}

// setup loads the settings and installs the logger.
func (opts *options) setup(cmd *cobra.Command) error {
	var err error
	if opts.configFile != "" {
		opts.settings, err = config.Open(opts.configFile)
	} else {
		opts.settings, err = config.OpenDefault()
	}
	if err != nil {
		return err
	}
	level, err := opts.settings.Level()
	if err != nil {
		return err
	}
	if opts.veryVerbose || opts.verbose || opts.quiet {
		level = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
	}
	logx.UserLevel = level
	slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr(), logx.UserLevel)))
	return nil
}
