// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads settings from a config file, a .env file and
// BENCHMARKIFY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/benchmarkify/benchmarkify/storage/fs/gcs"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "BENCHMARKIFY"

// Config holds the settings shared by all commands.
type Config struct {
	Addr    string // HTTP listen address
	Store   string // Profile backend URL
	BaseURL string // Base of share links; empty means the serving host
	Verbose bool
	H2C     bool // Serve HTTP/2 without TLS
	GCS     gcs.Options
}

// SetDefaults installs the default of every key in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("store", DefaultStore())
	v.SetDefault("base_url", "")
	v.SetDefault("verbose", false)
	v.SetDefault("h2c", false)
	v.SetDefault("gcs.credentials_file", "")
	v.SetDefault("gcs.access_token", "")
}

// DefaultStore is a directory backend under the user's home
// directory.
func DefaultStore() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "file://.benchmarkify"
	}
	return "file://" + filepath.ToSlash(filepath.Join(dir, ".benchmarkify"))
}

// Load reads configuration into v and returns it. cfgFile names a
// config file to read; if empty, benchmarkify.yaml in the current
// directory is read if present. A .env file in the current directory
// populates the environment first.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("benchmarkify")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{
		Addr:    v.GetString("addr"),
		Store:   v.GetString("store"),
		BaseURL: v.GetString("base_url"),
		Verbose: v.GetBool("verbose"),
		H2C:     v.GetBool("h2c"),
		GCS: gcs.Options{
			CredentialsFile: v.GetString("gcs.credentials_file"),
			AccessToken:     v.GetString("gcs.access_token"),
		},
	}, nil
}
