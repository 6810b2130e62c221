package internal

import (
	"fmt"

	"github.com/jdkup/jdkup/internal/errs"
	"github.com/jdkup/jdkup/internal/jdk"
	"github.com/jdkup/jdkup/internal/logger"
	"github.com/jdkup/jdkup/internal/middleware"
	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/platform"
	"github.com/jdkup/jdkup/internal/upgrade"

	"github.com/spf13/cobra"
)

func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the shell profile for an installed JDK",
		Long: `Rewrites your shell startup file so exactly one JAVA_HOME/PATH export
pair points at the target JDK, removing directives left over from previous
JDK setups. A timestamped backup of the profile is written first.

Examples:
    jdkup profile                                   # resolve the JDK through the package manager
    jdkup profile --jdk-home /usr/lib/jvm/java-21-openjdk-amd64`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := middleware.Get[*models.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}

			jdkHome, err := cmd.Flags().GetString("jdk-home")
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

			if jdkHome == "" {
				plat, err := platform.Detect(settings.PackageManager)
				if err != nil {
					return err
				}
				jdkHome, err = jdk.New(plat, nil).Home(version)
				if err != nil {
					logger.Debug("home resolution failed: %v", err)
					return fmt.Errorf("%s", errs.Msg(errs.JDKHomeRequired, version))
				}
			}

			up := upgrade.New(settings, nil, nil, nil)
			_, err = up.UpdateProfile(jdkHome, version)
			return err
		},
	}

	cmd.Flags().String("jdk-home", "", "JDK installation directory to export")
	cmd.Flags().Int("version", 0, "Target JDK version (default from config, 21)")

	return cmd
}
