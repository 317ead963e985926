package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chess-go"

// MemoryDir as a directory keeps records in memory only.
const MemoryDir = ":memory:"

// DataDir returns the platform-specific data directory for the program.
// - macOS: ~/Library/Application Support/chess-go/
// - Linux: $XDG_DATA_HOME/chess-go/ or ~/.local/share/chess-go/
// - Windows: %APPDATA%/chess-go/
func DataDir() (string, error) {
	return dataDir(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func dataDir(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	var baseDir string

	switch goos {
	case "darwin":
		homeDir, err := home()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := home()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := home()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(baseDir, appName), nil
}

// DatabaseDir returns the directory of the default game archive. Badger
// creates it on first open.
func DatabaseDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "games"), nil
}
