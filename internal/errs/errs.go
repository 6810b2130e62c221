package errs

import "fmt"

type Code string

const (
	TargetEqualsPrevious Code = "TARGET_EQUALS_PREVIOUS"
	TargetOlderThanPrev  Code = "TARGET_OLDER_THAN_PREVIOUS"
	JDKHomeRequired      Code = "JDK_HOME_REQUIRED"
	NoPackageManager     Code = "NO_PACKAGE_MANAGER"
)

var messages = map[Code]string{
	TargetEqualsPrevious: `Invalid version selection: target version %[1]d equals the version being removed

Usage:
  - Upgrade to the default LTS target:
      jdkup upgrade
  - Upgrade to a specific release:
      jdkup upgrade --version 21

Reason:
  jdkup removes JDK %[2]d before installing the target. Installing the same
  version it just removed would leave you where you started.`,

	TargetOlderThanPrev: `Invalid version selection: target version %[1]d is older than the version being removed (%[2]d)

Usage:
  jdkup upgrade --version 21

Reason:
  jdkup only migrates forward. To downgrade, adjust previous_version in
  ~/.config/jdkup/config.yml first.`,

	JDKHomeRequired: `Cannot resolve the JDK home directory

Usage:
  - Point the profile updater at an installed JDK explicitly:
      jdkup profile --jdk-home /usr/lib/jvm/java-21-openjdk-amd64
  - Or install the target JDK first so jdkup can resolve it:
      jdkup install

Reason:
  No installed JDK %[1]d was found through the detected package manager, and
  no --jdk-home override was given.`,

	NoPackageManager: `No supported package manager found

jdkup drives one of: brew, apt, dnf, yum. None of them is present in PATH.

If your system uses another package manager, install the JDK manually and run:
  jdkup profile --jdk-home <path-to-jdk>`,
}

func Msg(code Code, a ...any) string {
	msg := messages[code]
	if msg == "" {
		msg = string(code)
	}
	return fmt.Sprintf(msg, a...)
}
