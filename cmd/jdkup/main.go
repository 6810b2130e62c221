package main

import (
	"os"

	cmd "github.com/jdkup/jdkup/internal"
	"github.com/jdkup/jdkup/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.LogError(err.Error())
		os.Exit(1)
	}
}
