package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/utils"
)

const (
	DefaultTargetVersion   = 21
	DefaultPreviousVersion = 11
)

var configPath = DefaultConfigPath

func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "jdkup", "config.yml"), nil
}

// Load reads the settings file if present and fills in defaults.
// A missing file is not an error; malformed YAML is.
func Load() (*models.Settings, error) {
	s := &models.Settings{}

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	exists, err := utils.FileExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := utils.FileReader(path, utils.FileTypeYAML, s); err != nil {
			return nil, err
		}
	}

	applyDefaults(s)
	return s, nil
}

// Save persists the settings, creating parent directories as needed.
func Save(s *models.Settings) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	return utils.CreateFile(path, s, utils.FileTypeYAML, 0o644)
}

func applyDefaults(s *models.Settings) {
	if s.TargetVersion == 0 {
		s.TargetVersion = DefaultTargetVersion
	}
	if s.PreviousVersion == 0 {
		s.PreviousVersion = DefaultPreviousVersion
	}
}
