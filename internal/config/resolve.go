package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultHost is used when neither an override nor a saved preference names
// the daemon endpoint.
const DefaultHost = "http://localhost:8384"

const (
	envAPIKey = "SYNCCTL_API_KEY"
	envHost   = "SYNCCTL_HOST"
)

// KeyNotFoundError reports that no API key could be resolved. Path names the
// daemon configuration file that was searched so the operator can fix the
// setup.
type KeyNotFoundError struct {
	Path string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no API key found: save one with `syncctl config --api-key <KEY>` or make sure the daemon configuration exists at %s", e.Path)
}

// LoadDotEnv loads a .env file from the working directory when present.
// Variables already set in the environment win; a missing file is fine.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ResolveHost picks the daemon base URL: explicit override, then the
// SYNCCTL_HOST environment variable, then the saved preference, then
// DefaultHost. The result carries a scheme and no trailing slash.
func ResolveHost(override string, prefs Prefs) string {
	for _, candidate := range []string{override, os.Getenv(envHost), prefs.Host} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return NormalizeHost(trimmed)
		}
	}
	return DefaultHost
}

// NormalizeHost prefixes http:// when no scheme is present and strips any
// trailing slashes.
func NormalizeHost(host string) string {
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	return strings.TrimRight(host, "/")
}

// ResolveAPIKey picks the API key: the SYNCCTL_API_KEY environment variable,
// then the saved preference, then a scrape of the daemon's own config.xml.
func ResolveAPIKey(prefs Prefs) (string, error) {
	if key := strings.TrimSpace(os.Getenv(envAPIKey)); key != "" {
		return key, nil
	}
	if strings.TrimSpace(prefs.APIKey) != "" {
		return prefs.APIKey, nil
	}
	path, err := DaemonConfigPath()
	if err != nil {
		return "", err
	}
	return ScrapeAPIKey(path)
}

// ScrapeAPIKey extracts the gui apikey element from the daemon configuration
// document at path. Any failure to read, parse, or locate the element
// reports KeyNotFoundError naming the path.
func ScrapeAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &KeyNotFoundError{Path: path}
	}
	key, ok := apiKeyFromXML(data)
	if !ok {
		return "", &KeyNotFoundError{Path: path}
	}
	return key, nil
}

func apiKeyFromXML(data []byte) (string, bool) {
	var doc struct {
		GUI struct {
			APIKey string `xml:"apikey"`
		} `xml:"gui"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", false
	}
	if doc.GUI.APIKey == "" {
		return "", false
	}
	return doc.GUI.APIKey, true
}
