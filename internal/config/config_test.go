// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, DefaultStore(), cfg.Store)
	assert.Empty(t, cfg.BaseURL)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.H2C)
}

func TestLoadEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BENCHMARKIFY_ADDR", ":9000")
	t.Setenv("BENCHMARKIFY_STORE", "mem:")
	t.Setenv("BENCHMARKIFY_VERBOSE", "true")
	t.Setenv("BENCHMARKIFY_GCS_ACCESS_TOKEN", "tok")
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "mem:", cfg.Store)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "tok", cfg.GCS.AccessToken)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "benchmarkify.yaml"),
		[]byte("addr: :7000\nh2c: true\ngcs:\n  credentials_file: /creds.json\n"), 0o666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("BENCHMARKIFY_BASE_URL=https://bench.example.com/\n"), 0o666))
	t.Cleanup(func() { os.Unsetenv("BENCHMARKIFY_BASE_URL") })

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.True(t, cfg.H2C)
	assert.Equal(t, "/creds.json", cfg.GCS.CredentialsFile)
	assert.Equal(t, "https://bench.example.com/", cfg.BaseURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(viper.New(), "nope.yaml")
	assert.Error(t, err)
}
