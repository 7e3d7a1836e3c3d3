// Package config locates the per-user data directory and files.
package config

import (
	"os"
	"path/filepath"
)

// Environment overrides for the data locations.
const (
	EnvTabrHome      = "TABR_HOME"
	EnvTabrHistoryDB = "TABR_HISTORY_DB"
)

// DataDir returns the directory used to store tabr data. A dot
// directory in the user's home, unless TABR_HOME overrides it.
func DataDir() (string, error) {
	if v := os.Getenv(EnvTabrHome); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tabr"), nil
}

// EnsureDataDir creates the data directory if needed and returns it.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return d, nil
}

// HistoryDBPath returns the full path to the query history database.
func HistoryDBPath() (string, error) {
	if v := os.Getenv(EnvTabrHistoryDB); v != "" {
		return v, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "history.db"), nil
}
