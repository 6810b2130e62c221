package runner

import (
	"context"
	"fmt"
	"time"
)

type MockRunner struct {
	Commands     []MockCommand
	Responses    map[string]MockResponse
	ResponseFunc func(name string, args ...string) ([]byte, error)
}

type MockCommand struct {
	Name    string
	Args    []string
	Timeout time.Duration
	Mode    Mode
}

type MockResponse struct {
	Output []byte
	Error  error
}

func NewMockRunner() *MockRunner {
	return &MockRunner{
		Commands:  []MockCommand{},
		Responses: make(map[string]MockResponse),
	}
}

func (m *MockRunner) Run(
	_ context.Context,
	timeout time.Duration,
	mode Mode,
	name string,
	args ...string,
) ([]byte, error) {
	m.Commands = append(m.Commands, MockCommand{
		Name:    name,
		Args:    args,
		Timeout: timeout,
		Mode:    mode,
	})

	if resp, ok := m.Responses[cmdKey(name, args...)]; ok {
		return resp.Output, resp.Error
	}
	if m.ResponseFunc != nil {
		return m.ResponseFunc(name, args...)
	}
	if mode == Stream {
		return nil, nil
	}
	return []byte{}, nil
}

func (m *MockRunner) AddResponse(key string, output []byte, err error) {
	m.Responses[key] = MockResponse{
		Output: output,
		Error:  err,
	}
}

func cmdKey(name string, args ...string) string {
	key := name
	for _, arg := range args {
		key += "|" + arg
	}
	return key
}

func (m *MockRunner) VerifyCommand(name string, args ...string) bool {
	for _, cmd := range m.Commands {
		if cmd.Name == name && argsEqual(cmd.Args, args) {
			return true
		}
	}
	return false
}

func (m *MockRunner) VerifyRunCount(name string, count int) bool {
	runCount := 0
	for _, cmd := range m.Commands {
		if cmd.Name == name {
			runCount++
		}
	}
	return runCount == count
}

func argsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ---- domain helpers ----

// MockBrewPrefix wires the capture response for `brew --prefix <formula>`.
func (m *MockRunner) MockBrewPrefix(formula, prefix string) {
	m.AddResponse("brew|--prefix|"+formula, []byte(prefix+"\n"), nil)
}

// MockJavaVersion wires `java -version` style output (goes to stderr in
// reality, CombinedOutput folds it together).
func (m *MockRunner) MockJavaVersion(binary, version string) {
	out := fmt.Sprintf("openjdk version \"%s\" 2024-04-16\nOpenJDK Runtime Environment\n", version)
	if binary == "javac" {
		out = fmt.Sprintf("javac %s\n", version)
	}
	m.AddResponse(binary+"|-version", []byte(out), nil)
}
