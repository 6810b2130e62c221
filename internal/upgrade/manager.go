package upgrade

import (
	"fmt"
	"os"

	"github.com/jdkup/jdkup/internal/errs"
	"github.com/jdkup/jdkup/internal/jdk"
	"github.com/jdkup/jdkup/internal/logger"
	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/platform"
	"github.com/jdkup/jdkup/internal/prompter"
	"github.com/jdkup/jdkup/internal/runner"
	"github.com/jdkup/jdkup/internal/shellprofile"
	"github.com/jdkup/jdkup/internal/utils/pathutils"
)

type Options struct {
	Yes           bool
	SkipRemove    bool
	SkipProfile   bool
	TargetVersion int // 0 = settings default
}

// Upgrader orchestrates the full migration: remove old JDK, install the
// target, rewrite the shell profile, verify.
type Upgrader struct {
	Settings *models.Settings
	Platform *platform.Platform
	Runner   runner.CommandRunner
	Prompter prompter.Prompter
}

func New(s *models.Settings, p *platform.Platform, r runner.CommandRunner, pr prompter.Prompter) *Upgrader {
	if r == nil {
		r = &runner.ExecRunner{}
	}
	if pr == nil {
		pr = prompter.New(os.Stdin, os.Stdout)
	}
	return &Upgrader{
		Settings: s,
		Platform: p,
		Runner:   r,
		Prompter: pr,
	}
}

func (u *Upgrader) Execute(opts Options) error {
	target := opts.TargetVersion
	if target == 0 {
		target = u.Settings.TargetVersion
	}
	previous := u.Settings.PreviousVersion

	if target == previous {
		return fmt.Errorf("%s", errs.Msg(errs.TargetEqualsPrevious, target, previous))
	}
	if target < previous {
		return fmt.Errorf("%s", errs.Msg(errs.TargetOlderThanPrev, target, previous))
	}

	logger.Info("Upgrading JDK %d -> %d using %s (%s/%s)",
		previous, target, u.Platform.Manager, u.Platform.OS, u.Platform.Distro)

	if !opts.Yes {
		ok, err := u.Prompter.Confirm(fmt.Sprintf(
			"This will remove JDK %d and install JDK %d. Continue?", previous, target))
		if err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}
		if !ok {
			return fmt.Errorf("upgrade canceled by user")
		}
	}

	mgr := jdk.New(u.Platform, u.Runner)

	if opts.SkipRemove {
		logger.Info("Skipping removal of JDK %d", previous)
	} else if err := mgr.RemoveOld(previous); err != nil {
		return err
	}

	if err := mgr.InstallNew(target); err != nil {
		return err
	}

	home, err := mgr.Home(target)
	if err != nil {
		logger.Debug("home resolution failed: %v", err)
		return fmt.Errorf("%s", errs.Msg(errs.JDKHomeRequired, target))
	}

	var profilePath string
	var profileErr error
	if opts.SkipProfile {
		logger.Info("Skipping shell profile update")
	} else {
		profilePath, profileErr = u.UpdateProfile(home, target)
		if profileErr != nil {
			// Report and keep going: verification output is still useful,
			// but the failure must surface at the end.
			logger.LogError("Shell profile update failed: %v", profileErr)
		}
	}

	report, err := mgr.Verify(home)
	if err != nil {
		logger.Warn("Verification failed: %v", err)
	} else if err := jdk.PrintReport(report); err != nil {
		return err
	}

	if profilePath != "" {
		display, err := pathutils.ToHomePathFormat(profilePath)
		if err != nil {
			display = profilePath
		}
		logger.Info("Restart your shell or run: source %s", logger.Path(display))
	}
	logger.Success("JDK %d is ready at %s", target, home)

	return profileErr
}

// UpdateProfile resolves the shell profile (settings override first, then
// the environment-based policy) and applies the directive rewrite.
func (u *Upgrader) UpdateProfile(jdkHome string, target int) (string, error) {
	path := u.Settings.Profile
	if path != "" {
		abs, err := pathutils.ToAbsolutePath(path)
		if err != nil {
			return "", &shellprofile.PathResolutionError{Err: err}
		}
		path = abs
	} else {
		env, err := shellprofile.CurrentEnvironment()
		if err != nil {
			return "", err
		}
		path, err = shellprofile.ResolveProfile(env)
		if err != nil {
			return "", err
		}
	}

	upd := shellprofile.NewUpdater(u.Settings.PreviousVersion, target)
	backupPath, err := upd.Apply(path, jdkHome)
	if err != nil {
		return "", err
	}

	if backupPath != "" {
		logger.Info("Backed up %s to %s", logger.Path(path), logger.Path(backupPath))
	}
	logger.Success("Updated %s (JAVA_HOME=%s)", logger.Path(path), jdkHome)

	return path, nil
}
