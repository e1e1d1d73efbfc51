// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session loads the project configuration and generation policy for
// CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/mpgen/internal/config"
	"github.com/dacolabs/mpgen/internal/logging"
	"github.com/dacolabs/mpgen/internal/policy"
	"go.uber.org/zap"
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "MPGEN_CONFIG"

var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = config.ErrInvalidConfig
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration and the loaded policy.
type Context struct {
	// Config is the configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the file Config was read from; empty when defaults were used.
	ConfigPath string

	// Dir is the directory relative paths in Config resolve against.
	Dir string

	// Policy is the generation policy, embedded default unless Config.Policy is set.
	Policy *policy.Policy

	// Logger is the command logger.
	Logger *zap.SugaredLogger
}

// Options controls how Load finds the configuration.
type Options struct {
	// ConfigPath is an explicit config file; it must exist when set.
	ConfigPath string

	// Getenv reads the environment; nil disables the EnvConfig lookup.
	Getenv func(string) string

	// Logger is stored in the Context; nil means a no-op logger.
	Logger *zap.SugaredLogger
}

// Load resolves the config file, loads it and its policy, and returns a new
// context.Context with the session Context stored in it.
//
// The config path is taken from opts.ConfigPath, then EnvConfig, then
// ./mpgen.yaml. Only the last may be missing, in which case all defaults apply.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	path, explicit := opts.ConfigPath, opts.ConfigPath != ""
	if !explicit && opts.Getenv != nil {
		if env := opts.Getenv(EnvConfig); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		path = filepath.Join(cwd, config.FileName)
	}

	s := &Context{Dir: cwd, Logger: log}

	if _, statErr := os.Stat(path); statErr != nil {
		if explicit || !os.IsNotExist(statErr) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		log.Debugw("no config file, using defaults", "path", path)
		s.Config = config.Default()
	} else {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		s.Config = cfg
		s.ConfigPath = path
		s.Dir = filepath.Dir(path)
		log.Debugw("loaded config", "path", path)
	}

	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	pol, err := s.loadPolicy()
	if err != nil {
		return nil, err
	}
	s.Policy = pol

	return context.WithValue(ctx, contextKey{}, s), nil
}

func (s *Context) loadPolicy() (*policy.Policy, error) {
	if s.Config.Policy == "" {
		return policy.Default()
	}
	path := s.Resolve(s.Config.Policy)
	pol, err := policy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy %s: %w", path, err)
	}
	s.Logger.Debugw("loaded policy", "path", path)
	return pol, nil
}

// Resolve makes a config-relative path absolute.
func (s *Context) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Dir, path)
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if s, ok := ctx.Value(contextKey{}).(*Context); ok {
		return s
	}
	return nil
}
