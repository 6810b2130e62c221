package shellprofile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const backupTimestampLayout = "20060102_150405"

// Updater rewrites a shell profile so exactly one JAVA_HOME/PATH export pair
// points at a given JDK home, removing every line left over from a previous
// JDK setup first. It treats the profile purely as lines of text.
type Updater struct {
	Previous int    // version whose directives get removed
	Label    string // version label for the marker comment, e.g. "21"

	now func() time.Time
}

func NewUpdater(previous, target int) *Updater {
	return &Updater{
		Previous: previous,
		Label:    strconv.Itoa(target),
		now:      time.Now,
	}
}

// Apply performs the read-modify-write cycle on profilePath.
//
// When the file exists it is first copied to profilePath + ".backup_" +
// timestamp. The timestamp has one-second granularity, so two runs within
// the same second share a backup name; that collision window is a known
// limitation, kept because cleanup scripts depend on the filename format.
//
// Returns the backup path, or "" when no backup was made (fresh file).
func (u *Updater) Apply(profilePath, jdkHome string) (string, error) {
	predicates := RemovalPredicates(u.Previous)

	data, err := os.ReadFile(profilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", &IOError{Path: profilePath, Op: "read", Err: err}
		}
		// Fresh file: no backup, no leading blank line.
		content := strings.Join(u.directives(jdkHome), "\n") + "\n"
		if err := os.WriteFile(profilePath, []byte(content), 0o644); err != nil {
			return "", &IOError{Path: profilePath, Op: "write", Err: err}
		}
		return "", nil
	}

	backupPath, err := u.backup(profilePath, data)
	if err != nil {
		return "", err
	}

	kept := make([]string, 0)
	for _, line := range strings.Split(string(data), "\n") {
		if shouldRemove(line, predicates) {
			continue
		}
		kept = append(kept, line)
	}

	// Collapse trailing blank lines so repeated runs are byte-stable.
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}

	if len(kept) > 0 {
		kept = append(kept, "")
	}
	kept = append(kept, u.directives(jdkHome)...)

	content := strings.Join(kept, "\n") + "\n"
	if err := os.WriteFile(profilePath, []byte(content), 0o644); err != nil {
		return "", &IOError{Path: profilePath, Op: "write", Err: err}
	}

	return backupPath, nil
}

// directives is the marker comment plus the export pair.
func (u *Updater) directives(jdkHome string) []string {
	return []string{
		fmt.Sprintf("# Java %s LTS", u.Label),
		fmt.Sprintf("export JAVA_HOME=%q", jdkHome),
		pathExportLine,
	}
}

func (u *Updater) backup(profilePath string, data []byte) (string, error) {
	backupPath := profilePath + ".backup_" + u.now().Format(backupTimestampLayout)

	mode := os.FileMode(0o644)
	if info, err := os.Stat(profilePath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(backupPath, data, mode); err != nil {
		return "", &IOError{Path: backupPath, Op: "backup", Err: err}
	}
	return backupPath, nil
}
