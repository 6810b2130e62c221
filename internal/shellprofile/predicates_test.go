package shellprofile

import "testing"

func predicateByName(t *testing.T, name string) RemovalPredicate {
	t.Helper()
	for _, p := range RemovalPredicates(11) {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no predicate named %s", name)
	return RemovalPredicate{}
}

func TestRemovalPredicates(t *testing.T) {
	cases := []struct {
		predicate string
		line      string
		match     bool
	}{
		// old-formula: bare substring, anywhere in the line
		{"old-formula", `brew "openjdk@11"`, true},
		{"old-formula", `export JAVA_HOME="$(brew --prefix openjdk@11)"`, true},
		{"old-formula", `export JAVA_HOME="$(brew --prefix openjdk@17)"`, false},
		{"old-formula", `# openjdk@11 was here`, true},

		// java-home-openjdk: anchored on the export, value mentions openjdk
		{"java-home-openjdk", `export JAVA_HOME=/opt/homebrew/opt/openjdk@21`, true},
		{"java-home-openjdk", `export JAVA_HOME="/usr/lib/jvm/openjdk-17"`, true},
		{"java-home-openjdk", `export JAVA_HOME=/opt/corretto`, false},
		{"java-home-openjdk", `# export JAVA_HOME=/opt/openjdk`, false},
		{"java-home-openjdk", `export OPENJDK_HOME=/opt/openjdk`, false},

		// java-home-versioned: java-<ver>-openjdk path segment
		{"java-home-versioned", `export JAVA_HOME=/usr/lib/jvm/java-11-openjdk-amd64`, true},
		{"java-home-versioned", `export JAVA_HOME=/usr/lib/jvm/java-17-openjdk`, true},
		{"java-home-versioned", `export JAVA_HOME=/usr/lib/jvm/temurin-17`, false},

		// path-openjdk-bin: openjdk followed later by bin
		{"path-openjdk-bin", `export PATH=/usr/lib/jvm/java-11-openjdk/bin:$PATH`, true},
		{"path-openjdk-bin", `export PATH="$(brew --prefix openjdk@11)/bin:$PATH"`, true},
		{"path-openjdk-bin", `export PATH=/usr/local/bin:/opt/openjdk`, false},
		{"path-openjdk-bin", `export PATH=/usr/local/bin:$PATH`, false},

		// lts-comment: comment with Java then LTS
		{"lts-comment", `# Java 11 LTS`, true},
		{"lts-comment", `# Java 21 LTS (managed by jdkup)`, true},
		{"lts-comment", `# LTS Java 11`, false},
		{"lts-comment", `echo "# Java 11 LTS"`, false},
		{"lts-comment", `# java 11 lts`, false}, // case-sensitive

		// managed-java-home / managed-path: our own directive format
		{"managed-java-home", `export JAVA_HOME="/opt/jdk21"`, true},
		{"managed-java-home", `export JAVA_HOME=/opt/jdk21`, false},
		{"managed-path", `export PATH="$JAVA_HOME/bin:$PATH"`, true},
		{"managed-path", `export PATH="$JAVA_HOME/bin:$PATH" # jdk`, false},
	}

	for _, tc := range cases {
		t.Run(tc.predicate+"/"+tc.line, func(t *testing.T) {
			p := predicateByName(t, tc.predicate)
			if got := p.Match(tc.line); got != tc.match {
				t.Fatalf("predicate %s on %q = %v, want %v", tc.predicate, tc.line, got, tc.match)
			}
		})
	}
}

func TestRemovalPredicates_PreviousVersionParameter(t *testing.T) {
	for _, p := range RemovalPredicates(17) {
		if p.Name != "old-formula" {
			continue
		}
		if !p.Match("openjdk@17 stuff") {
			t.Fatal("old-formula should match openjdk@17 for previous=17")
		}
		if p.Match("openjdk@11 stuff") {
			t.Fatal("old-formula for previous=17 must not match openjdk@11")
		}
	}
}

func TestShouldRemove_UserLinesSurvive(t *testing.T) {
	preds := RemovalPredicates(11)
	for _, line := range []string{
		"echo hi",
		"alias ll='ls -l'",
		`export GOPATH="$HOME/go"`,
		"# some unrelated comment",
		"",
	} {
		if shouldRemove(line, preds) {
			t.Fatalf("user line %q must not be removed", line)
		}
	}
}
