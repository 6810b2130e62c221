package shellprofile

import "fmt"

// IOError wraps a failed read/write on the profile file or its backup.
// It is fatal: a silently un-updated profile would leave the shell
// environment inconsistent with what the CLI reports.
type IOError struct {
	Path string
	Op   string // "read", "write", "backup"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("profile %s failed (%s): %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// PathResolutionError means the home directory (and therefore every profile
// candidate) could not be determined. Also fatal.
type PathResolutionError struct {
	Err error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve shell profile path: %v", e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }
