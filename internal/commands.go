package internal

import (
	"github.com/jdkup/jdkup/internal/middleware"
	"github.com/spf13/cobra"
)

var defaultCommands = []middleware.CommandFactory{
	middleware.UseMiddlewareChain(middleware.LoadSettings, middleware.DetectPlatform)(NewUpgradeCmd),
	middleware.UseMiddlewareChain(middleware.LoadSettings, middleware.DetectPlatform)(NewDetectCmd),
	middleware.UseMiddlewareChain(middleware.LoadSettings, middleware.DetectPlatform)(NewInstallCmd),
	middleware.UseMiddlewareChain(middleware.LoadSettings, middleware.DetectPlatform)(NewRemoveCmd),
	// profile must stay usable on systems without a supported package
	// manager, so it resolves the platform lazily.
	middleware.UseMiddlewareChain(middleware.LoadSettings)(NewProfileCmd),
	middleware.UseMiddlewareChain(middleware.LoadSettings, middleware.DetectPlatform)(NewVerifyCmd),
	middleware.UseMiddlewareChain(middleware.LoadSettings)(NewReleasesCmd),
}

func RegisterSubCommands(cmd *cobra.Command) {
	for _, factory := range defaultCommands {
		cmd.AddCommand(factory())
	}
}
