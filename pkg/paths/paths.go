// Package paths provides home directory resolution, tilde expansion and
// config file discovery for relink.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/relink/pkg/errors"
)

// Interpolator substitutes ${name} references in a string.
// Implemented by vars.Resolver.
type Interpolator interface {
	Interpolate(s string) (string, error)
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment
// variable. If both fail, it returns an error rather than using dangerous
// defaults.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv("HOME")
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrHomeNotSet,
		"unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands a leading ~ to the user's home directory.
// Only the bare "~" and the "~/..." forms are supported; anything else
// ("~otheruser") is returned untouched.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return GetHomeDirectory()
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrHomeNotSet, "cannot expand ~")
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}

// Expand runs variable interpolation followed by tilde expansion and cleans
// the result. An empty input stays empty; callers treat that as invalid
// elsewhere. Re-running Expand on an already-expanded absolute path is a
// no-op.
func Expand(path string, ip Interpolator) (string, error) {
	if path == "" {
		return "", nil
	}

	interpolated, err := ip.Interpolate(path)
	if err != nil {
		return "", err
	}
	if interpolated == "" {
		return "", nil
	}

	expanded, err := ExpandHome(interpolated)
	if err != nil {
		return "", err
	}

	return filepath.Clean(expanded), nil
}

// Config file names probed in order, both in the working directory and in
// the XDG config directory.
var configNames = []string{"relink.toml", "relink.json", "relink.yaml", "relink.yml"}

// FindConfig locates the configuration file. An explicit path wins; otherwise
// the working directory is probed, then $XDG_CONFIG_HOME/relink/.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", explicit)
		}
		return explicit, nil
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	configDir := filepath.Join(xdg.ConfigHome, "relink")
	for _, name := range configNames {
		path := filepath.Join(configDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Newf(errors.ErrConfigLoad,
		"no configuration found: looked for %v in . and %s", configNames, configDir)
}

// DefaultConfigPath is where gen-config writes when asked to persist.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "relink", "relink.toml")
}
