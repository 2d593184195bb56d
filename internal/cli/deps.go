package cli

import (
	"os"
	"os/exec"

	"github.com/suzu-editor/suzu/internal/fileio"
	"github.com/suzu-editor/suzu/internal/input"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	FileIO        fileio.FileIO
	StdinReader   StdinReader
	CommandRunner CommandRunner
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// CommandRunner starts external programs such as the user's editor
type CommandRunner interface {
	RunInteractive(name string, args ...string) error
	LookPath(file string) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	FileIO:        fileio.NewOSFileIO(),
	StdinReader:   input.NewStdinReader(),
	CommandRunner: &realCommandRunner{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

type realCommandRunner struct{}

func (r *realCommandRunner) RunInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *realCommandRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
