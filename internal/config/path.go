// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is where the ledger database lives unless the user
// configures another location.
const DefaultDatabasePath = "$HOME/.local/share/pocketbook/pocketbook.db"

// ExpandPath expands a leading ~ and any $VAR environment references in a
// file path. A tilde that cannot be resolved (no home directory) is left as
// written.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
