package middleware

import (
	"context"
	"fmt"

	"github.com/jdkup/jdkup/internal/config"
	"github.com/spf13/cobra"
)

// LoadSettings reads the optional config file and stashes the settings in
// the command context. A missing file falls back to defaults.
func LoadSettings(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	s, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, CtxKeySettings, s))

	return next(cmd, args)
}
