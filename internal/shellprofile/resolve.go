package shellprofile

import (
	"errors"
	"os"
	"path/filepath"
)

// Environment captures the shell-relevant pieces of the process environment
// so profile resolution is a deterministic function of its input.
type Environment struct {
	Home          string // user home directory
	Shell         string // $SHELL, may be empty
	ZshVersionSet bool   // $ZSH_VERSION present
}

// CurrentEnvironment snapshots the real process environment.
func CurrentEnvironment() (Environment, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Environment{}, &PathResolutionError{Err: err}
	}
	_, zsh := os.LookupEnv("ZSH_VERSION")
	return Environment{
		Home:          home,
		Shell:         os.Getenv("SHELL"),
		ZshVersionSet: zsh,
	}, nil
}

func (e Environment) isBash() bool {
	return filepath.Base(e.Shell) == "bash"
}

func (e Environment) isZsh() bool {
	return e.ZshVersionSet || filepath.Base(e.Shell) == "zsh"
}

// ResolveProfile picks the startup file to rewrite:
//
//  1. bash login shell and ~/.bashrc exists        -> ~/.bashrc
//  2. bash login shell and ~/.bash_profile exists  -> ~/.bash_profile
//  3. zsh ($ZSH_VERSION set or zsh login shell)    -> ~/.zshrc
//  4. otherwise the first existing of ~/.zshrc, ~/.bashrc, ~/.bash_profile,
//     ~/.profile; if none exist, ~/.profile.
//
// The ordering is load-bearing: callers print the chosen path in their
// instructions, so it must match what interactive shells actually source.
func ResolveProfile(env Environment) (string, error) {
	if env.Home == "" {
		return "", &PathResolutionError{Err: errors.New("home directory is empty")}
	}

	var (
		bashrc      = filepath.Join(env.Home, ".bashrc")
		bashProfile = filepath.Join(env.Home, ".bash_profile")
		zshrc       = filepath.Join(env.Home, ".zshrc")
		profile     = filepath.Join(env.Home, ".profile")
	)

	if env.isBash() {
		if exists(bashrc) {
			return bashrc, nil
		}
		if exists(bashProfile) {
			return bashProfile, nil
		}
	}

	if env.isZsh() {
		return zshrc, nil
	}

	for _, candidate := range []string{zshrc, bashrc, bashProfile, profile} {
		if exists(candidate) {
			return candidate, nil
		}
	}
	return profile, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
