// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchmarkify/benchmarkify/share"
)

// clipboard is replaced in tests.
var clipboard share.Clipboard = share.SystemClipboard{}

func (c *cli) shareCmd() *cobra.Command {
	var copyLink bool
	cmd := &cobra.Command{
		Use:   "share [file|-]",
		Short: "Print a link that opens a benchmark document in the web viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			link, err := share.Link(c.shareBase(), raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			if !copyLink {
				return nil
			}

			ctx := cmd.Context()
			done := make(chan error, 1)
			share.Copy(ctx, clipboard, link, func(err error) { done <- err })
			select {
			case err := <-done:
				if err != nil {
					return fmt.Errorf("copying link: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
	cmd.Flags().BoolVar(&copyLink, "copy", false, "also copy the link to the clipboard")
	return cmd
}

// shareBase returns the base URL of share links.
func (c *cli) shareBase() string {
	if c.cfg.BaseURL != "" {
		return c.cfg.BaseURL
	}
	return "http://" + c.cfg.Addr + "/"
}
