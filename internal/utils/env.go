package utils

import (
	"os"
	"os/exec"

	"github.com/jdkup/jdkup/internal/logger"
)

// CommandExists reports whether a command is resolvable in PATH.
func CommandExists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

func MustSet(key, val string) (old string) {
	old, _ = os.LookupEnv(key)
	if err := os.Setenv(key, val); err != nil {
		logger.LogError("envutil: " + err.Error())
	}
	return
}

func DeferRestore(key, val string) {
	if err := os.Setenv(key, val); err != nil {
		logger.LogError("envutil: failed to restore %s: %v", key, err)
	}
}
