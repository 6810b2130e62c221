package internal

import (
	"fmt"
	"strconv"

	"github.com/jdkup/jdkup/internal/adoptium"
	"github.com/jdkup/jdkup/internal/logger"

	"github.com/spf13/cobra"
)

func NewReleasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "releases",
		Short: "List JDK releases published by Adoptium",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := adoptium.New(nil)

			rel, err := client.AvailableReleases(cmd.Context())
			if err != nil {
				return err
			}

			table := logger.CreateTable([]string{"Release", "LTS", "Current"})
			for _, v := range rel.AvailableReleases {
				lts := ""
				if rel.IsLTS(v) {
					lts = "yes"
				}
				current := ""
				if v == rel.MostRecentLTS {
					current = "latest LTS"
				} else if v == rel.MostRecentFeature {
					current = "latest feature"
				}
				if err := table.Append([]string{strconv.Itoa(v), lts, current}); err != nil {
					return fmt.Errorf("append row: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render table: %w", err)
			}

			logger.Info("Upgrade to the latest LTS with: jdkup upgrade --version %d", rel.MostRecentLTS)
			return nil
		},
	}
}
