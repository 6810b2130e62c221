package jdk

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jdkup/jdkup/internal/logger"
	"github.com/jdkup/jdkup/internal/runner"
)

// Report is the outcome of post-install verification.
type Report struct {
	JavaVersion  string
	JavacVersion string
	JDKHome      string
}

var quotedVersion = regexp.MustCompile(`"([^"]+)"`)

// Verify runs java/javac -version against the given JDK home (or PATH when
// jdkHome is empty) and extracts the reported versions.
func (m *Manager) Verify(jdkHome string) (*Report, error) {
	report := &Report{JDKHome: jdkHome}

	java := "java"
	javac := "javac"
	if jdkHome != "" {
		java = filepath.Join(jdkHome, "bin", "java")
		javac = filepath.Join(jdkHome, "bin", "javac")
	}

	out, err := m.Runner.Run(context.Background(), 30*time.Second, runner.Capture, java, "-version")
	if err != nil {
		return nil, fmt.Errorf("java -version failed: %w", err)
	}
	report.JavaVersion = parseJavaVersion(string(out))

	out, err = m.Runner.Run(context.Background(), 30*time.Second, runner.Capture, javac, "-version")
	if err != nil {
		return nil, fmt.Errorf("javac -version failed: %w", err)
	}
	report.JavacVersion = parseJavacVersion(string(out))

	return report, nil
}

// parseJavaVersion pulls the quoted version out of output like
// `openjdk version "21.0.3" 2024-04-16`.
func parseJavaVersion(out string) string {
	if m := quotedVersion.FindStringSubmatch(out); m != nil {
		return m[1]
	}
	return strings.TrimSpace(strings.SplitN(out, "\n", 2)[0])
}

// parseJavacVersion handles `javac 21.0.3`.
func parseJavacVersion(out string) string {
	fields := strings.Fields(out)
	if len(fields) >= 2 && fields[0] == "javac" {
		return fields[1]
	}
	return strings.TrimSpace(strings.SplitN(out, "\n", 2)[0])
}

// PrintReport renders the verification table.
func PrintReport(r *Report) error {
	table := logger.CreateTable([]string{"Component", "Version", "Path"})

	rows := [][]string{
		{"java", r.JavaVersion, filepath.Join(r.JDKHome, "bin", "java")},
		{"javac", r.JavacVersion, filepath.Join(r.JDKHome, "bin", "javac")},
		{"JAVA_HOME", "", r.JDKHome},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
