package internal

import (
	"github.com/jdkup/jdkup/internal/jdk"
	"github.com/jdkup/jdkup/internal/middleware"
	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/platform"

	"github.com/spf13/cobra"
)

func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the previous JDK only",
		Long: `Removes the previous JDK packages through the detected package manager.
Removal failures (package not installed, already gone) are reported and
ignored.

Examples:
    jdkup remove                # remove the default previous version (11)
    jdkup remove --version 17`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := middleware.Get[*models.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}
			plat, err := middleware.Get[*platform.Platform](cmd, middleware.CtxKeyPlatform)
			if err != nil {
				return err
			}

			version, err := cmd.Flags().GetInt("version")
			if err != nil {
				return err
			}
			if version == 0 {
				version = settings.PreviousVersion
			}

			return jdk.New(plat, nil).RemoveOld(version)
		},
	}

	cmd.Flags().Int("version", 0, "JDK version to remove (default from config, 11)")

	return cmd
}
