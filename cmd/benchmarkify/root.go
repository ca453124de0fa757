// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/benchmarkify/benchmarkify/benchdoc"
	"github.com/benchmarkify/benchmarkify/internal/backend"
	"github.com/benchmarkify/benchmarkify/internal/config"
	"github.com/benchmarkify/benchmarkify/internal/logging"
	"github.com/benchmarkify/benchmarkify/profile"
)

// cli holds the state shared by all commands of one invocation.
type cli struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "benchmarkify",
		Short:         "View Android benchmark results as charts and tables",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.v, c.cfgFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			if cmd.Name() == "serve" {
				c.log, err = logging.New(cfg.Verbose)
			} else {
				c.log, err = logging.Console(cfg.Verbose)
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config `file` (default ./benchmarkify.yaml)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.String("store", "", "profile store `URL` (mem:, file://, sqlite3://, sqlite://, mysql://, postgres://, gs://)")
	c.bindFlags(pf, map[string]string{"verbose": "verbose", "store": "store"})

	root.AddCommand(
		c.serveCmd(),
		c.viewCmd(),
		c.tuiCmd(),
		c.profileCmd(),
		c.shareCmd(),
	)
	return root
}

// bindFlags binds each flag in fs named by a key of keys to the
// configuration key it maps to.
func (c *cli) bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		if err := c.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding --%s: %v", flag, err))
		}
	}
}

// openProfiles opens the configured profile store. The returned
// function releases it.
func (c *cli) openProfiles(ctx context.Context) (*profile.Store, func(), error) {
	b, err := backend.Open(ctx, c.cfg.Store, backend.Options{GCS: c.cfg.GCS, Log: c.log})
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := b.Close(); err != nil {
			c.log.Warn("closing store", zap.Error(err))
		}
	}
	return profile.Open(ctx, b, c.log), closer, nil
}

// readInput returns the raw document named by args: a file, "-" for
// standard input, or the bundled sample if args is empty.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		return benchdoc.Sample(), nil
	}
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}
