package shellprofile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type shellBranch struct {
	name string
	env  func(home string) Environment
}

var shellBranches = []shellBranch{
	{"bash", func(home string) Environment {
		return Environment{Home: home, Shell: "/bin/bash"}
	}},
	{"zsh-login", func(home string) Environment {
		return Environment{Home: home, Shell: "/usr/bin/zsh"}
	}},
	{"zsh-var", func(home string) Environment {
		return Environment{Home: home, Shell: "/bin/sh", ZshVersionSet: true}
	}},
	{"other", func(home string) Environment {
		return Environment{Home: home, Shell: "/bin/sh"}
	}},
}

// candidate files, in the order used by the existence bitmask below.
var candidates = []string{".bashrc", ".bash_profile", ".zshrc", ".profile"}

func seedFiles(t *testing.T, home string, mask int) {
	t.Helper()
	for i, name := range candidates {
		if mask&(1<<i) != 0 {
			if err := os.WriteFile(filepath.Join(home, name), []byte("# seeded\n"), 0o644); err != nil {
				t.Fatalf("cannot seed %s: %v", name, err)
			}
		}
	}
}

// expected reproduces the documented resolution table.
func expected(branch string, home string, mask int) string {
	has := func(i int) bool { return mask&(1<<i) != 0 }
	const (
		bashrc = iota
		bashProfile
		zshrc
		profile
	)

	if branch == "bash" {
		if has(bashrc) {
			return filepath.Join(home, ".bashrc")
		}
		if has(bashProfile) {
			return filepath.Join(home, ".bash_profile")
		}
	}
	if branch == "zsh-login" || branch == "zsh-var" {
		return filepath.Join(home, ".zshrc")
	}
	for _, c := range []struct {
		bit  int
		name string
	}{
		{zshrc, ".zshrc"},
		{bashrc, ".bashrc"},
		{bashProfile, ".bash_profile"},
		{profile, ".profile"},
	} {
		if has(c.bit) {
			return filepath.Join(home, c.name)
		}
	}
	return filepath.Join(home, ".profile")
}

func TestResolveProfile_FullTable(t *testing.T) {
	for _, branch := range shellBranches {
		for mask := 0; mask < 16; mask++ {
			t.Run(branch.name+"/"+maskName(mask), func(t *testing.T) {
				home := t.TempDir()
				seedFiles(t, home, mask)

				got, err := ResolveProfile(branch.env(home))
				if err != nil {
					t.Fatalf("ResolveProfile err: %v", err)
				}

				want := expected(branch.name, home, mask)
				if got != want {
					t.Fatalf("resolved %s, want %s (mask %04b)", got, want, mask)
				}
			})
		}
	}
}

func maskName(mask int) string {
	name := ""
	for i, c := range candidates {
		if mask&(1<<i) != 0 {
			if name != "" {
				name += "+"
			}
			name += c
		}
	}
	if name == "" {
		return "none"
	}
	return name
}

func TestResolveProfile_EmptyHome(t *testing.T) {
	_, err := ResolveProfile(Environment{Shell: "/bin/bash"})
	if err == nil {
		t.Fatal("expected error for empty home")
	}
	var resErr *PathResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected PathResolutionError, got %T", err)
	}
}

func TestResolveProfile_IgnoresDirectories(t *testing.T) {
	home := t.TempDir()
	// A directory named like a candidate must not be picked.
	if err := os.Mkdir(filepath.Join(home, ".zshrc"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveProfile(Environment{Home: home, Shell: "/bin/sh"})
	if err != nil {
		t.Fatalf("ResolveProfile err: %v", err)
	}
	if got != filepath.Join(home, ".profile") {
		t.Fatalf("resolved %s, want ~/.profile fallback", got)
	}
}
