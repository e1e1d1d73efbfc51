// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/mpgen/internal/config"
	"github.com/dacolabs/mpgen/internal/policy"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	abs, err := filepath.Abs(dir)
	require.NoError(t, err)

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(abs))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		dir        string // relative to the package, empty means use t.TempDir()
		wantErr    error
		wantFormat string
		wantInput  string
	}{
		{
			name:       "no config uses defaults",
			dir:        "",
			wantFormat: config.DefaultFormat,
			wantInput:  config.DefaultInput,
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "missing policy",
			dir:     "testdata/missing-policy",
			wantErr: os.ErrNotExist,
		},
		{
			name:       "default policy",
			dir:        "testdata/default-policy",
			wantFormat: "markdown",
			wantInput:  config.DefaultInput,
		},
		{
			name:       "valid",
			dir:        "testdata/valid",
			wantFormat: config.DefaultFormat,
			wantInput:  "api.d.ts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDir := tt.dir
			if testDir == "" {
				testDir = t.TempDir()
			}
			chdir(t, testDir)

			ctx, err := Load(context.Background(), Options{})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			s := From(ctx)
			require.NotNil(t, s)
			assert.Equal(t, tt.wantFormat, s.Config.Format)
			assert.Equal(t, tt.wantInput, s.Config.Input)
			assert.NotNil(t, s.Policy)
			assert.NotNil(t, s.Logger)
		})
	}
}

func TestLoad_CustomPolicy(t *testing.T) {
	chdir(t, "testdata/valid")

	ctx, err := Load(context.Background(), Options{})
	require.NoError(t, err)

	s := From(ctx)
	assert.True(t, s.Policy.ExportsInterface("PingRequest"))
	assert.Equal(t, policy.Request, s.Policy.Classify("PingRequest"))
	assert.Equal(t, "raw", s.Config.LookupKeys)
	assert.Equal(t, filepath.Join(s.Dir, "out", "api.dart"), s.Resolve(s.Config.Output))
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, (&config.Config{Version: 1, Format: "jsonschema"}).Save(path))

	getenv := func(key string) string {
		if key == EnvConfig {
			return path
		}
		return ""
	}

	ctx, err := Load(context.Background(), Options{Getenv: getenv})
	require.NoError(t, err)

	s := From(ctx)
	assert.Equal(t, "jsonschema", s.Config.Format)
	assert.Equal(t, path, s.ConfigPath)
	assert.Equal(t, dir, s.Dir)
}

func TestLoad_ExplicitMissing(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(context.Background(), Options{ConfigPath: "missing.yaml"})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_EnvMissing(t *testing.T) {
	chdir(t, t.TempDir())

	getenv := func(string) string { return "missing.yaml" }
	_, err := Load(context.Background(), Options{Getenv: getenv})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestResolve(t *testing.T) {
	s := &Context{Dir: "/project"}

	assert.Equal(t, "", s.Resolve(""))
	assert.Equal(t, "/abs/file.d.ts", s.Resolve("/abs/file.d.ts"))
	assert.Equal(t, filepath.Join("/project", "typing", "api.d.ts"), s.Resolve("typing/api.d.ts"))
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	assert.Error(t, err)

	chdir(t, t.TempDir())
	require.NoError(t, PreRunLoad(nil)(withFlags(cmd), nil))

	s, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFormat, s.Config.Format)
}

func withFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().String(FlagConfig, "", "")
	cmd.Flags().CountP(FlagVerbose, "v", "")
	return cmd
}
