// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved benchmark profiles",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "save name [file|-]",
			Short: "Save a benchmark document under name",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := args[0]
				if strings.TrimSpace(name) == "" {
					return fmt.Errorf("profile name must not be empty")
				}
				raw, err := readInput(cmd, args[1:])
				if err != nil {
					return err
				}
				profiles, release, err := c.openProfiles(cmd.Context())
				if err != nil {
					return err
				}
				defer release()
				if err := profiles.Save(cmd.Context(), name, raw); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved profile %s\n", name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List saved profiles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				profiles, release, err := c.openProfiles(cmd.Context())
				if err != nil {
					return err
				}
				defer release()
				for _, name := range profiles.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show name",
			Short: "Print a saved benchmark document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				profiles, release, err := c.openProfiles(cmd.Context())
				if err != nil {
					return err
				}
				defer release()
				raw, ok := profiles.Select(args[0])
				if !ok {
					return fmt.Errorf("no profile named %q", args[0])
				}
				_, err = io.WriteString(cmd.OutOrStdout(), raw)
				return err
			},
		},
	)
	return cmd
}
