package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// newDaemon serves canned JSON bodies keyed by request path, rejecting
// requests that arrive without an API key header.
func newDaemon(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

// runCLI executes the command tree against host with an isolated prefs file
// and a test API key in the environment.
func runCLI(t *testing.T, host string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SYNCCTL_API_KEY", "test-key")
	t.Setenv("SYNCCTL_HOST", "")
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")

	full := append([]string{"--host", host, "--config", prefsPath}, args...)
	return runCLIRaw(t, full...)
}

func runCLIRaw(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output does not contain %q:\n%s", needle, haystack)
	}
}
