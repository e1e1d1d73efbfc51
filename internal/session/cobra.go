// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/dacolabs/mpgen/internal/logging"
	"github.com/spf13/cobra"
)

// Persistent flag names read by PreRunLoad.
const (
	FlagConfig  = "config"
	FlagVerbose = "verbose"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the session
// and stores it in the command's context.
func PreRunLoad(getenv func(string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString(FlagConfig)
		verbosity, _ := cmd.Flags().GetCount(FlagVerbose)

		ctx, err := Load(cmd.Context(), Options{
			ConfigPath: path,
			Getenv:     getenv,
			Logger:     logging.New(verbosity, cmd.ErrOrStderr()),
		})
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
