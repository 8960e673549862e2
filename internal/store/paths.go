package store

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/julianstephens/dailydash/internal/constants"
)

// DefaultConfigDir returns the per-user directory holding the state file,
// history log and logs, e.g. ~/.config/dailydash on Linux.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, constants.AppName), nil
}

// ResolveConfigDir expands a user-supplied --config override, falling back to
// the default location when the override is empty.
func ResolveConfigDir(override string) (string, error) {
	if override == "" {
		return DefaultConfigDir()
	}
	if strings.HasPrefix(override, "~") {
		return homedir.Expand(override)
	}
	return filepath.Abs(override)
}
