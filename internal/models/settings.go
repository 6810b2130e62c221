package models

// Settings is the optional user configuration loaded from
// ~/.config/jdkup/config.yml. Zero values mean "use the defaults".
type Settings struct {
	TargetVersion   int    `yaml:"target_version,omitempty"`
	PreviousVersion int    `yaml:"previous_version,omitempty"`
	Profile         string `yaml:"profile,omitempty"`         // shell profile path override
	PackageManager  string `yaml:"package_manager,omitempty"` // brew/apt/dnf/yum override
}
