// Package xdg resolves the XDG base directories themectl reads and writes.
package xdg

import (
	"os"
	"path/filepath"
)

const appDir = "themectl"

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

// DataHome returns $XDG_DATA_HOME or ~/.local/share.
func DataHome() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// ConfigDir returns themectl's own config directory.
func ConfigDir() (string, error) {
	base, err := ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir), nil
}

// BackupsDir returns where configuration backups are stored.
func BackupsDir() (string, error) {
	base, err := DataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir, "backups"), nil
}

// ThemeSearchDirs returns the directories scanned for installed themes, in
// precedence order: user dirs first, system dirs last.
func ThemeSearchDirs() []string {
	var dirs []string

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".themes"))
	}
	if data, err := DataHome(); err == nil {
		dirs = append(dirs, filepath.Join(data, "themes"))
	}
	dirs = append(dirs,
		"/usr/share/themes",
		"/usr/local/share/themes",
	)
	return dirs
}
