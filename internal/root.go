package internal

import (
	"fmt"

	"github.com/jdkup/jdkup/internal/logger"

	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "dev"

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jdkup",
		Short: "JDK upgrade tool for developer workstations",
		Long: `jdkup migrates a workstation from an old JDK to a new LTS release.
It detects your OS and package manager, removes the old JDK, installs the new
one, updates your shell profile (JAVA_HOME and PATH) and verifies the result.`,
		Example: `jdkup upgrade --yes`,
		Run: func(cmd *cobra.Command, _ []string) {
			versionFlag, _ := cmd.Flags().GetBool("version")
			if versionFlag {
				fmt.Printf("Version: %s\n", Version)
				return
			}
			_ = cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.FlagQuiet, _ = cmd.Flags().GetBool("quiet")
			logger.FlagSilent, _ = cmd.Flags().GetBool("silent")
			logger.FlagVerboseCount, _ = cmd.Flags().GetCount("verbose")
			logger.ConfigureLoggerFromFlags()
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.Flags().BoolP("version", "v", false, "Print version information")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Errors only")
	cmd.PersistentFlags().BoolP("silent", "s", false, "No output at all")
	cmd.PersistentFlags().CountP("verbose", "V", "Increase verbosity (-V debug)")

	RegisterSubCommands(cmd)

	return cmd
}

func Execute() error {
	logger.ConfigureLoggerFromFlags()

	root := NewRootCmd()

	if err := root.Execute(); err != nil {
		logger.Debug("Failed to execute root command: %v", err)
		return err
	}
	return nil
}
