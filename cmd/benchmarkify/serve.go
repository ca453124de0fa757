// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/benchmarkify/benchmarkify/app"
	"github.com/benchmarkify/benchmarkify/internal/config"
	"github.com/benchmarkify/benchmarkify/internal/metrics"
	"github.com/benchmarkify/benchmarkify/profile"
)

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			profiles, release, err := c.openProfiles(ctx)
			if err != nil {
				return err
			}
			defer release()

			srv := &http.Server{
				Addr:              c.cfg.Addr,
				Handler:           newHandler(c.cfg, profiles, c.log),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errc := make(chan error, 1)
			go func() {
				c.log.Info("listening", zap.String("addr", c.cfg.Addr), zap.Bool("h2c", c.cfg.H2C))
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			c.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.String("addr", "", "serve HTTP on `address` (default localhost:8080)")
	f.Bool("h2c", false, "also serve HTTP/2 without TLS")
	f.String("base-url", "", "base `URL` of share links (default: the request host)")
	c.bindFlags(f, map[string]string{"addr": "addr", "h2c": "h2c", "base-url": "base_url"})
	return cmd
}

// newHandler returns the server's root handler.
func newHandler(cfg *config.Config, profiles *profile.Store, log *zap.Logger) http.Handler {
	a := &app.App{
		Profiles: profiles,
		BaseURL:  cfg.BaseURL,
		Log:      log,
		Metrics:  metrics.New(),
	}
	mux := http.NewServeMux()
	a.RegisterOnMux(mux)
	if cfg.H2C {
		return h2c.NewHandler(mux, &http2.Server{})
	}
	return mux
}
