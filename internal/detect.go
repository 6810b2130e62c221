package internal

import (
	"fmt"

	"github.com/jdkup/jdkup/internal/logger"
	"github.com/jdkup/jdkup/internal/middleware"
	"github.com/jdkup/jdkup/internal/platform"

	"github.com/spf13/cobra"
)

func NewDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show the detected OS, distro and package manager",
		RunE: func(cmd *cobra.Command, _ []string) error {
			plat, err := middleware.Get[*platform.Platform](cmd, middleware.CtxKeyPlatform)
			if err != nil {
				return err
			}

			table := logger.CreateTable([]string{"Property", "Value"})
			rows := [][]string{
				{"OS", plat.OS},
				{"Distro", plat.Distro},
				{"Package manager", plat.Manager.String()},
			}
			for _, row := range rows {
				if err := table.Append(row); err != nil {
					return fmt.Errorf("append row: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render table: %w", err)
			}
			return nil
		},
	}
}
