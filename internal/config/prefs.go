package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the persisted user preferences. Both fields are optional; an
// empty field defers to the next resolution step.
type Prefs struct {
	APIKey string `toml:"api_key,omitempty"`
	Host   string `toml:"host,omitempty"`
}

// DefaultPrefsPath returns the preferences file location under the user
// configuration directory.
func DefaultPrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "syncctl", "prefs.toml"), nil
}

// DaemonConfigPath returns the expected location of the daemon's own
// configuration document.
func DaemonConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "syncthing", "config.xml"), nil
}

// LoadPrefs reads preferences from path, or the default location when path
// is empty. A missing file yields zero-value preferences.
func LoadPrefs(path string) (Prefs, error) {
	resolved, err := resolvePrefsPath(path)
	if err != nil {
		return Prefs{}, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("read preferences %s: %w", resolved, err)
	}
	var prefs Prefs
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Prefs{}, fmt.Errorf("parse preferences %s: %w", resolved, err)
	}
	return prefs, nil
}

// SavePrefs merges the non-empty fields of update into any existing saved
// preferences and writes the result, creating directories as needed.
func SavePrefs(path string, update Prefs) (Prefs, error) {
	resolved, err := resolvePrefsPath(path)
	if err != nil {
		return Prefs{}, err
	}

	merged, err := LoadPrefs(resolved)
	if err != nil {
		return Prefs{}, err
	}
	if key := strings.TrimSpace(update.APIKey); key != "" {
		merged.APIKey = key
	}
	if host := strings.TrimSpace(update.Host); host != "" {
		merged.Host = host
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return Prefs{}, fmt.Errorf("create preferences dir: %w", err)
	}
	data, err := toml.Marshal(merged)
	if err != nil {
		return Prefs{}, fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o600); err != nil {
		return Prefs{}, fmt.Errorf("write preferences %s: %w", resolved, err)
	}
	return merged, nil
}

func resolvePrefsPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPrefsPath()
	}
	return ExpandPath(path)
}

// ExpandPath resolves tilde shortcuts and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
