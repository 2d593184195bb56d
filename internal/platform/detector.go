// Package platform locates suzu's per-user files on each operating system.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Names of the application directory and its files.
const (
	AppDirName     = "suzu"
	ConfigFileName = "config.json"
)

// Paths contains the detected per-user locations.
type Paths struct {
	ConfigDir string
}

// ConfigFile returns the default configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, ConfigFileName)
}

// DetectPaths returns platform-specific default paths for the current user.
func DetectPaths() (*Paths, error) {
	return detectPaths(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func detectPaths(goos string, getenv func(string) string, home func() (string, error)) (*Paths, error) {
	switch goos {
	case "darwin":
		return detectDarwinPaths(home)
	case "windows":
		return detectWindowsPaths(getenv)
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return detectUnixPaths(getenv, home)
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// detectDarwinPaths uses the Application Support folder.
func detectDarwinPaths(home func() (string, error)) (*Paths, error) {
	dir, err := home()
	if err != nil {
		return nil, fmt.Errorf("home directory not found: %w", err)
	}
	return &Paths{
		ConfigDir: filepath.Join(dir, "Library", "Application Support", AppDirName),
	}, nil
}

// detectUnixPaths follows the XDG base directory layout.
func detectUnixPaths(getenv func(string) string, home func() (string, error)) (*Paths, error) {
	configHome := getenv("XDG_CONFIG_HOME")
	if configHome == "" || !filepath.IsAbs(configHome) {
		dir, err := home()
		if err != nil {
			return nil, fmt.Errorf("neither $XDG_CONFIG_HOME nor a home directory is set: %w", err)
		}
		configHome = filepath.Join(dir, ".config")
	}
	return &Paths{
		ConfigDir: filepath.Join(configHome, AppDirName),
	}, nil
}

// detectWindowsPaths uses the roaming application data folder.
func detectWindowsPaths(getenv func(string) string) (*Paths, error) {
	appData := getenv("AppData")
	if appData == "" {
		return nil, fmt.Errorf("%%AppData%% is not set")
	}
	return &Paths{
		ConfigDir: filepath.Join(appData, AppDirName),
	}, nil
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
