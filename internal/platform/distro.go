package platform

import (
	"fmt"
	"os"
	"strings"
)

// osReleasePath is a var so tests can point it at a fixture.
var osReleasePath = "/etc/os-release"

// distroID returns the lowercase ID field from /etc/os-release
// (e.g. "ubuntu", "fedora", "arch").
func distroID(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "ID=") {
			id := strings.Trim(strings.TrimPrefix(line, "ID="), `"`)
			if id != "" {
				return strings.ToLower(id), nil
			}
		}
	}

	return "", fmt.Errorf("could not determine distro from %s", path)
}
