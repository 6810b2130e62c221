package upgrade

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdkup/jdkup/internal/logger"
	"github.com/jdkup/jdkup/internal/models"
	"github.com/jdkup/jdkup/internal/platform"
	"github.com/jdkup/jdkup/internal/runner"
)

func TestMain(m *testing.M) {
	logger.UseTestMode()
	os.Exit(m.Run())
}

type mockPrompter struct {
	confirms []bool
	err      error
	ci       int
}

func (m *mockPrompter) Confirm(string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.ci >= len(m.confirms) {
		return false, fmt.Errorf("unexpected Confirm call")
	}
	res := m.confirms[m.ci]
	m.ci++
	return res, nil
}

const brewHome = "/home/linuxbrew/.linuxbrew/opt/openjdk@21"

func newBrewMock() *runner.MockRunner {
	mockRun := runner.NewMockRunner()
	mockRun.MockBrewPrefix("openjdk@21", brewHome)
	mockRun.MockJavaVersion(brewHome+"/bin/java", "21.0.3")
	mockRun.AddResponse(brewHome+"/bin/javac|-version", []byte("javac 21.0.3\n"), nil)
	return mockRun
}

func seededProfile(t *testing.T) string {
	t.Helper()
	profile := filepath.Join(t.TempDir(), ".zshrc")
	seed := strings.Join([]string{
		"# Java 11 LTS",
		`export JAVA_HOME="$(brew --prefix openjdk@11)"`,
		`export PATH="$(brew --prefix openjdk@11)/bin:$PATH"`,
		"alias ll='ls -l'",
	}, "\n") + "\n"
	if err := os.WriteFile(profile, []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}
	return profile
}

func newTestUpgrader(profile string, mockRun *runner.MockRunner, p *mockPrompter) *Upgrader {
	settings := &models.Settings{
		TargetVersion:   21,
		PreviousVersion: 11,
		Profile:         profile,
	}
	plat := &platform.Platform{OS: "linux", Distro: "ubuntu", Manager: platform.Brew}
	return New(settings, plat, mockRun, p)
}

func TestExecute_FullFlow(t *testing.T) {
	profile := seededProfile(t)
	mockRun := newBrewMock()

	up := newTestUpgrader(profile, mockRun, &mockPrompter{confirms: []bool{true}})
	if err := up.Execute(Options{}); err != nil {
		t.Fatalf("Execute err: %v", err)
	}

	if !mockRun.VerifyCommand("brew", "uninstall", "--ignore-dependencies", "openjdk@11") {
		t.Fatalf("old JDK not removed: %+v", mockRun.Commands)
	}
	if !mockRun.VerifyCommand("brew", "install", "openjdk@21") {
		t.Fatalf("new JDK not installed: %+v", mockRun.Commands)
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Contains(content, "openjdk@11") {
		t.Fatalf("old directives survived:\n%s", content)
	}
	want := fmt.Sprintf("export JAVA_HOME=%q", brewHome)
	if !strings.Contains(content, want) {
		t.Fatalf("missing %s in:\n%s", want, content)
	}

	// The pre-mutation state must be preserved in a backup next to the file.
	entries, err := os.ReadDir(filepath.Dir(profile))
	if err != nil {
		t.Fatal(err)
	}
	backups := 0
	for _, e := range entries {
		if strings.Contains(e.Name(), ".backup_") {
			backups++
		}
	}
	if backups != 1 {
		t.Fatalf("expected exactly one backup, found %d", backups)
	}
}

func TestExecute_CanceledByUser(t *testing.T) {
	mockRun := newBrewMock()
	up := newTestUpgrader(seededProfile(t), mockRun, &mockPrompter{confirms: []bool{false}})

	if err := up.Execute(Options{}); err == nil {
		t.Fatal("expected cancel error")
	}
	if mockRun.VerifyCommand("brew", "install", "openjdk@21") {
		t.Fatal("nothing should be installed after cancel")
	}
}

func TestExecute_YesSkipsPrompt(t *testing.T) {
	mockRun := newBrewMock()
	// Prompter with no scripted answers: any Confirm call would fail the test.
	up := newTestUpgrader(seededProfile(t), mockRun, &mockPrompter{})

	if err := up.Execute(Options{Yes: true}); err != nil {
		t.Fatalf("Execute err: %v", err)
	}
}

func TestExecute_SkipRemove(t *testing.T) {
	mockRun := newBrewMock()
	up := newTestUpgrader(seededProfile(t), mockRun, &mockPrompter{})

	if err := up.Execute(Options{Yes: true, SkipRemove: true}); err != nil {
		t.Fatalf("Execute err: %v", err)
	}
	if mockRun.VerifyCommand("brew", "uninstall", "--ignore-dependencies", "openjdk@11") {
		t.Fatal("removal should have been skipped")
	}
}

func TestExecute_VersionValidation(t *testing.T) {
	cases := []struct {
		name   string
		target int
	}{
		{"equal to previous", 11},
		{"older than previous", 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRun := newBrewMock()
			up := newTestUpgrader(seededProfile(t), mockRun, &mockPrompter{})

			if err := up.Execute(Options{Yes: true, TargetVersion: tc.target}); err == nil {
				t.Fatal("expected version validation error")
			}
			if len(mockRun.Commands) != 0 {
				t.Fatalf("no commands should run, got %+v", mockRun.Commands)
			}
		})
	}
}

func TestExecute_ProfileFailureSurfacesButVerifies(t *testing.T) {
	mockRun := newBrewMock()
	// Profile path in a directory that does not exist: the updater fails.
	badProfile := filepath.Join(t.TempDir(), "missing", ".zshrc")
	up := newTestUpgrader(badProfile, mockRun, &mockPrompter{})

	err := up.Execute(Options{Yes: true})
	if err == nil {
		t.Fatal("profile failure must surface")
	}
	// Verification still ran after the profile step failed.
	if !mockRun.VerifyCommand(brewHome+"/bin/java", "-version") {
		t.Fatalf("verification should still run, got %+v", mockRun.Commands)
	}
}
