package internal

import (
	"fmt"

	"github.com/jdkup/jdkup/internal/errs"
	"github.com/jdkup/jdkup/internal/jdk"
	"github.com/jdkup/jdkup/internal/logger"
	"github.com/jdkup/jdkup/internal/middleware"
	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/platform"

	"github.com/spf13/cobra"
)

func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the installed JDK and print a summary",
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

			mgr := jdk.New(plat, nil)

			home, err := mgr.Home(version)
			if err != nil {
				logger.Debug("home resolution failed: %v", err)
				return fmt.Errorf("%s", errs.Msg(errs.JDKHomeRequired, version))
			}

			report, err := mgr.Verify(home)
			if err != nil {
				return err
			}
			return jdk.PrintReport(report)
		},
	}

	cmd.Flags().Int("version", 0, "JDK version to verify (default from config, 21)")

	return cmd
}
