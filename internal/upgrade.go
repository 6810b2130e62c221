package internal

import (
	"github.com/jdkup/jdkup/internal/middleware"
	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/platform"
	"github.com/jdkup/jdkup/internal/upgrade"

	"github.com/spf13/cobra"
)

func NewUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Remove the old JDK, install the new one, update your shell profile",
		Long: `Runs the full migration: removes the previous JDK through the detected
package manager, installs the target LTS release, rewrites your shell profile
so JAVA_HOME and PATH point at it, then verifies java and javac.

Examples:
    jdkup upgrade                # interactive, default target (21)
    jdkup upgrade --yes          # no confirmation prompt
    jdkup upgrade --version 25   # pick another target release
    jdkup upgrade --skip-remove  # keep the old JDK installed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := middleware.Get[*models.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}
			plat, err := middleware.Get[*platform.Platform](cmd, middleware.CtxKeyPlatform)
			if err != nil {
				return err
			}

			yes, err := cmd.Flags().GetBool("yes")
			if err != nil {
				return err
			}
			skipRemove, err := cmd.Flags().GetBool("skip-remove")
			if err != nil {
				return err
			}
			skipProfile, err := cmd.Flags().GetBool("skip-profile")
			if err != nil {
				return err
			}
			version, err := cmd.Flags().GetInt("version")
			if err != nil {
				return err
			}

			up := upgrade.New(settings, plat, nil, nil)

			return up.Execute(upgrade.Options{
				Yes:           yes,
				SkipRemove:    skipRemove,
				SkipProfile:   skipProfile,
				TargetVersion: version,
			})
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().Bool("skip-remove", false, "Keep the previous JDK installed")
	cmd.Flags().Bool("skip-profile", false, "Do not touch the shell profile")
	cmd.Flags().Int("version", 0, "Target JDK version (default from config, 21)")

	return cmd
}
