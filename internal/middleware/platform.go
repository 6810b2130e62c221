package middleware

import (
	"context"

	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/platform"
	"github.com/spf13/cobra"
)

// DetectPlatform resolves OS/distro/package manager and stashes the result.
// Must run after LoadSettings so a package_manager override is honored.
func DetectPlatform(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	override := ""
	if s, err := Get[*models.Settings](cmd, CtxKeySettings); err == nil {
		override = s.PackageManager
	}

	p, err := platform.Detect(override)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, CtxKeyPlatform, p))

	return next(cmd, args)
}
