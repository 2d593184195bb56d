package cli

import (
	"path/filepath"
	"strings"

	"github.com/suzu-editor/suzu/internal/fileio"
	"github.com/suzu-editor/suzu/internal/input"
)

// stdinFrom answers prompts from canned text
func stdinFrom(text string) StdinReader {
	return input.NewLineReader(strings.NewReader(text))
}

// MockCommandRunner is a test double for CommandRunner
type MockCommandRunner struct {
	Calls        [][]string
	LookPathFunc func(file string) (string, error)
	RunFunc      func(name string, args ...string) error
	Err          error
}

func (m *MockCommandRunner) RunInteractive(name string, args ...string) error {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return m.Err
}

func (m *MockCommandRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "/usr/bin/" + file, nil
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			FileIO:        fileio.NewMockFileIO(nil),
			StdinReader:   stdinFrom("y\n"),
			CommandRunner: &MockCommandRunner{},
		},
	}
}

// WithFiles seeds the in-memory file system
func (b *MockDependenciesBuilder) WithFiles(files map[string]string) *MockDependenciesBuilder {
	b.deps.FileIO = fileio.NewMockFileIO(files)
	return b
}

// WithFileIO sets a custom file collaborator
func (b *MockDependenciesBuilder) WithFileIO(fio fileio.FileIO) *MockDependenciesBuilder {
	b.deps.FileIO = fio
	return b
}

// WithStdinInput sets the stdin input for the mock
func (b *MockDependenciesBuilder) WithStdinInput(text string) *MockDependenciesBuilder {
	b.deps.StdinReader = stdinFrom(text)
	return b
}

// WithCommandRunner sets the runner used to start external programs
func (b *MockDependenciesBuilder) WithCommandRunner(runner CommandRunner) *MockDependenciesBuilder {
	b.deps.CommandRunner = runner
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}

// TestHelper provides utilities for CLI tests
type TestHelper struct {
	T interface {
		Helper()
		Cleanup(func())
	}
	OldDeps       *Dependencies
	OldConfigPath string
	OldJSON       bool
	ConfigPath    string
	Files         *fileio.MockFileIO
}

// NewTestHelper points the CLI at an in-memory configuration under dir.
// content seeds the configuration file; an empty content leaves it missing.
func NewTestHelper(t interface {
	Helper()
	Cleanup(func())
}, dir, content string) *TestHelper {
	t.Helper()

	path := filepath.Join(dir, "config.json")
	files := map[string]string{}
	if content != "" {
		files[path] = content
	}
	mockFiles := fileio.NewMockFileIO(files)

	helper := &TestHelper{
		T:             t,
		OldDeps:       deps,
		OldConfigPath: configPath,
		OldJSON:       jsonOutput,
		ConfigPath:    path,
		Files:         mockFiles,
	}

	deps = NewMockDeps().WithFileIO(mockFiles).Build()
	configPath = path
	jsonOutput = false

	// Cleanup function to restore original deps
	t.Cleanup(func() {
		deps = helper.OldDeps
		configPath = helper.OldConfigPath
		jsonOutput = helper.OldJSON
	})

	return helper
}

// SetStdinInput sets the stdin input
func (h *TestHelper) SetStdinInput(text string) {
	deps.StdinReader = stdinFrom(text)
}

// SetCommandRunner sets the runner used to start external programs
func (h *TestHelper) SetCommandRunner(runner CommandRunner) {
	deps.CommandRunner = runner
}

// Content returns the current configuration file text
func (h *TestHelper) Content() (string, bool) {
	return h.Files.Content(h.ConfigPath)
}

// WriteConfig replaces the configuration file text
func (h *TestHelper) WriteConfig(content string) {
	_ = h.Files.WriteAll(h.ConfigPath, []byte(content), false)
}
