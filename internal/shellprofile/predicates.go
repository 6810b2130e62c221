package shellprofile

import (
	"fmt"
	"regexp"
	"strings"
)

// RemovalPredicate decides whether a single profile line belongs to a prior
// JDK setup and must be dropped before the new directive pair is appended.
// Matching is line-level, case-sensitive, and never parses shell syntax.
type RemovalPredicate struct {
	Name  string
	Match func(line string) bool
}

var (
	versionedOpenJDK = regexp.MustCompile(`java-[0-9]+-openjdk`)
	ltsComment       = regexp.MustCompile(`^#.*Java.*LTS`)
)

const pathExportLine = `export PATH="$JAVA_HOME/bin:$PATH"`

// RemovalPredicates returns the full predicate set for a given previous
// version. The first five mirror the historical cleanup patterns; the last
// two match the updater's own directive format so that repeated runs with
// any jdkHome value leave exactly one active pair.
func RemovalPredicates(previous int) []RemovalPredicate {
	oldFormula := fmt.Sprintf("openjdk@%d", previous)

	return []RemovalPredicate{
		{
			Name: "old-formula",
			Match: func(line string) bool {
				return strings.Contains(line, oldFormula)
			},
		},
		{
			Name: "java-home-openjdk",
			Match: func(line string) bool {
				return strings.HasPrefix(line, "export JAVA_HOME=") &&
					strings.Contains(line, "openjdk")
			},
		},
		{
			Name: "java-home-versioned",
			Match: func(line string) bool {
				return strings.HasPrefix(line, "export JAVA_HOME=") &&
					versionedOpenJDK.MatchString(line)
			},
		},
		{
			Name: "path-openjdk-bin",
			Match: func(line string) bool {
				if !strings.HasPrefix(line, "export PATH=") {
					return false
				}
				i := strings.Index(line, "openjdk")
				return i >= 0 && strings.Contains(line[i:], "bin")
			},
		},
		{
			Name: "lts-comment",
			Match: func(line string) bool {
				return ltsComment.MatchString(line)
			},
		},
		{
			Name: "managed-java-home",
			Match: func(line string) bool {
				return strings.HasPrefix(line, `export JAVA_HOME="`)
			},
		},
		{
			Name: "managed-path",
			Match: func(line string) bool {
				return line == pathExportLine
			},
		},
	}
}

func shouldRemove(line string, predicates []RemovalPredicate) bool {
	for _, p := range predicates {
		if p.Match(line) {
			return true
		}
	}
	return false
}
