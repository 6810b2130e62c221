package jdk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jdkup/jdkup/internal/logger"
	"github.com/jdkup/jdkup/internal/platform"
	"github.com/jdkup/jdkup/internal/runner"
)

// Manager drives the detected package manager to remove and install JDK
// packages and to resolve where the JDK landed on disk.
type Manager struct {
	Platform *platform.Platform
	Runner   runner.CommandRunner

	jvmDir string // Linux JVM install root, override in tests
}

func New(p *platform.Platform, r runner.CommandRunner) *Manager {
	if r == nil {
		r = &runner.ExecRunner{}
	}
	return &Manager{
		Platform: p,
		Runner:   r,
		jvmDir:   "/usr/lib/jvm",
	}
}

// packageNames returns the package-manager-specific package list for a JDK
// version. The JRE/devel companions matter on removal: leaving them behind
// keeps the old version on PATH.
func (m *Manager) packageNames(version int) []string {
	switch m.Platform.Manager {
	case platform.Brew:
		return []string{fmt.Sprintf("openjdk@%d", version)}
	case platform.Apt:
		return []string{
			fmt.Sprintf("openjdk-%d-jdk", version),
			fmt.Sprintf("openjdk-%d-jre", version),
		}
	default: // dnf, yum
		return []string{
			fmt.Sprintf("java-%d-openjdk", version),
			fmt.Sprintf("java-%d-openjdk-devel", version),
		}
	}
}

func (m *Manager) run(mode runner.Mode, timeout time.Duration, args ...string) ([]byte, error) {
	name := args[0]
	rest := args[1:]
	if m.Platform.Manager.NeedsSudo() {
		name = "sudo"
		rest = args
	}
	return m.Runner.Run(context.Background(), timeout, mode, name, rest...)
}

// RemoveOld uninstalls the previous JDK. Failures are logged and ignored:
// the package may simply not be installed, and the upgrade must proceed.
func (m *Manager) RemoveOld(previous int) error {
	pkgs := m.packageNames(previous)
	logger.Info("Removing JDK %d (%s)...", previous, strings.Join(pkgs, ", "))

	var args []string
	switch m.Platform.Manager {
	case platform.Brew:
		args = append([]string{"brew", "uninstall", "--ignore-dependencies"}, pkgs...)
	case platform.Apt:
		args = append([]string{"apt-get", "remove", "-y"}, pkgs...)
	default:
		args = append([]string{m.Platform.Manager.String(), "remove", "-y"}, pkgs...)
	}

	if out, err := m.run(runner.Capture, 120*time.Second, args...); err != nil {
		logger.Warn("Could not remove JDK %d (continuing): %v", previous, err)
		logger.Debug("removal output: %s", strings.TrimSpace(string(out)))
		return nil
	}

	if m.Platform.Manager == platform.Apt {
		if _, err := m.run(runner.Capture, 120*time.Second, "apt-get", "autoremove", "-y"); err != nil {
			logger.Warn("autoremove failed (continuing): %v", err)
		}
	}

	logger.Success("JDK %d removed", previous)
	return nil
}

// InstallNew installs the target JDK. Unlike removal, a failed install is
// fatal: there is nothing useful to do downstream without the JDK.
func (m *Manager) InstallNew(target int) error {
	pkgs := m.packageNames(target)
	logger.Info("Installing JDK %d (%s)...", target, strings.Join(pkgs, ", "))

	if m.Platform.Manager == platform.Apt {
		if _, err := m.run(runner.Stream, 300*time.Second, "apt-get", "update"); err != nil {
			return fmt.Errorf("apt-get update failed: %w", err)
		}
	}

	var args []string
	switch m.Platform.Manager {
	case platform.Brew:
		args = append([]string{"brew", "install"}, pkgs...)
	case platform.Apt:
		// apt needs only the jdk package; the jre comes in as a dependency
		args = []string{"apt-get", "install", "-y", pkgs[0]}
	default:
		args = append([]string{m.Platform.Manager.String(), "install", "-y"}, pkgs...)
	}

	if _, err := m.run(runner.Stream, 600*time.Second, args...); err != nil {
		return fmt.Errorf("failed to install JDK %d: %w", target, err)
	}

	logger.Success("JDK %d installed", target)
	return nil
}

// Home resolves the installation directory of the target JDK.
func (m *Manager) Home(target int) (string, error) {
	if m.Platform.Manager == platform.Brew {
		formula := fmt.Sprintf("openjdk@%d", target)
		out, err := m.Runner.Run(context.Background(), 30*time.Second, runner.Capture,
			"brew", "--prefix", formula)
		if err != nil {
			return "", fmt.Errorf("brew --prefix %s failed: %w", formula, err)
		}
		prefix := strings.TrimSpace(string(out))
		if prefix == "" {
			return "", fmt.Errorf("brew --prefix %s returned nothing", formula)
		}
		return prefix, nil
	}

	pattern := filepath.Join(m.jvmDir, fmt.Sprintf("java-%d-openjdk*", target))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", m.jvmDir, err)
	}

	dirs := make([]string, 0, len(matches))
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil && info.IsDir() {
			dirs = append(dirs, match)
		}
	}
	if len(dirs) == 0 {
		return "", fmt.Errorf("no JDK %d installation found under %s", target, m.jvmDir)
	}

	// Deterministic pick when both arch-suffixed and plain dirs exist.
	sort.Strings(dirs)
	return dirs[0], nil
}
