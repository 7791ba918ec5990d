// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command markerview loads a scenario file, shows its marker batches in
// a scene graph and prints the resulting property and scene trees.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/markers/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "markerview <scenario.yaml>",
		Short: "Show the markers of a scenario in a scene graph",
		Long: `Markerview reads a YAML scenario of frames and marker batches, adds
every batch to a marker host and prints the namespace toggles and the
scene graph that result.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Defaults()
			if opts.config != "" {
				if err := settings.Open(opts.config); err != nil {
					return err
				}
			}
			settings.HiddenNamespaces = append(settings.HiddenNamespaces, opts.hide...)
			if opts.fixedFrame != "" {
				settings.FixedFrame = opts.fixedFrame
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: settings.SlogLevel()})))
			return view(cmd.OutOrStdout(), args[0], settings, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML settings file")
	cmd.Flags().StringSliceVar(&opts.hide, "hide", nil, "namespaces to hide (repeatable)")
	cmd.Flags().StringVar(&opts.fixedFrame, "fixed-frame", "", "fixed frame of the renderer")
	cmd.Flags().BoolVar(&opts.release, "release", false, "tear down the host and batches and report leaked nodes")
	return cmd
}

type options struct {
	config     string
	hide       []string
	fixedFrame string
	release    bool
}
