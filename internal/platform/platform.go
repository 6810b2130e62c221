package platform

import (
	"fmt"
	"runtime"

	"github.com/jdkup/jdkup/internal/errs"
	"github.com/jdkup/jdkup/internal/utils"
)

// Manager identifies the system package manager jdkup drives.
type Manager string

const (
	Brew Manager = "brew"
	Apt  Manager = "apt"
	Dnf  Manager = "dnf"
	Yum  Manager = "yum"
)

func (m Manager) String() string { return string(m) }

// NeedsSudo reports whether package operations must run under sudo.
// Homebrew refuses to run as root; the system managers require it.
func (m Manager) NeedsSudo() bool { return m != Brew }

// IsValid reports whether m is a manager jdkup knows how to drive.
func (m Manager) IsValid() bool {
	switch m {
	case Brew, Apt, Dnf, Yum:
		return true
	}
	return false
}

// probeOrder is the detection order. Homebrew wins when present (it is the
// only option on macOS and the preferred one on linuxbrew setups), then the
// native Linux managers.
var probeOrder = []Manager{Brew, Apt, Dnf, Yum}

// Platform is the detected host environment.
type Platform struct {
	OS      string  // runtime.GOOS: darwin, linux
	Distro  string  // /etc/os-release ID on Linux, empty elsewhere
	Manager Manager // detected or overridden package manager
}

// Detect resolves the host OS, distro and package manager.
// An override ("brew", "apt", ...) short-circuits manager probing.
func Detect(override string) (*Platform, error) {
	p := &Platform{OS: runtime.GOOS}

	if p.OS == "linux" {
		id, err := distroID(osReleasePath)
		if err != nil {
			// Distro is informational only; detection still works off PATH.
			id = ""
		}
		p.Distro = id
	}

	if override != "" {
		m := Manager(override)
		if !m.IsValid() {
			return nil, fmt.Errorf("unsupported package manager override: %s", override)
		}
		p.Manager = m
		return p, nil
	}

	for _, m := range probeOrder {
		if utils.CommandExists(m.String()) {
			p.Manager = m
			return p, nil
		}
	}

	return nil, fmt.Errorf("%s", errs.Msg(errs.NoPackageManager))
}
