// Package storage provides persistent storage for user preferences, play
// statistics and cached piece artwork.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "circularchess"

// DataDirEnv overrides the data directory, e.g. for portable installs.
const DataDirEnv = "CIRCULARCHESS_DATA"

// GetDataDir returns the application data directory, creating it if needed:
// $CIRCULARCHESS_DATA if set, otherwise
// ~/Library/Application Support/circularchess on macOS,
// %APPDATA%\circularchess on Windows and
// $XDG_DATA_HOME/circularchess (default ~/.local/share) elsewhere.
func GetDataDir() (string, error) {
	dir := os.Getenv(DataDirEnv)
	if dir == "" {
		base, err := platformDataHome()
		if err != nil {
			return "", fmt.Errorf("locate data directory: %w", err)
		}
		dir = filepath.Join(base, appName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func platformDataHome() (string, error) {
	env, fallback := "XDG_DATA_HOME", []string{".local", "share"}
	switch runtime.GOOS {
	case "darwin":
		env, fallback = "", []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	}

	if env != "" {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// GetDatabaseDir returns the directory of the BadgerDB database.
func GetDatabaseDir() (string, error) {
	return subDir("db")
}

// GetExportDir returns the directory games are exported to.
func GetExportDir() (string, error) {
	return subDir("games")
}

func subDir(name string) (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(dataDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
