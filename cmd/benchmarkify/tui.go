// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/benchmarkify/benchmarkify/benchview"
	"github.com/benchmarkify/benchmarkify/tui"
)

func (c *cli) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file|-]",
		Short: "Browse a benchmark document in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			profiles, release, err := c.openProfiles(ctx)
			if err != nil {
				return err
			}
			defer release()

			s := benchview.NewSession(benchview.Options{Log: c.log, Profiles: profiles})
			s.SetRaw(raw)
			return tui.Run(ctx, s, tui.Options{BaseURL: c.shareBase()})
		},
	}
}
