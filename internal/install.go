package internal

import (
	"github.com/jdkup/jdkup/internal/jdk"
	"github.com/jdkup/jdkup/internal/middleware"
	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/platform"

	"github.com/spf13/cobra"
)

func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the target JDK only",
		Long: `Installs the target JDK through the detected package manager without
removing anything or touching the shell profile.

Examples:
    jdkup install               # install the default target (21)
    jdkup install --version 25`,
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
				version = settings.TargetVersion
			}

			return jdk.New(plat, nil).InstallNew(version)
		},
	}

	cmd.Flags().Int("version", 0, "Target JDK version (default from config, 21)")

	return cmd
}
