package main

import (
	"strings"
	"testing"
)

func TestFoldersCommandMarksPausedFolder(t *testing.T) {
	server := newDaemon(t, map[string]string{
		"/rest/config/folders": `[
			{"id":"folder1","label":"Documents","paused":false},
			{"id":"folder2","label":"Photos","paused":true}
		]`,
		"/rest/stats/folder": `{"folder1":{"lastScan":"2020-01-01T00:00:00Z"}}`,
	})

	out, _, err := runCLI(t, server.URL, "folders")
	if err != nil {
		t.Fatalf("folders: %v", err)
	}
	requireContains(t, out, "Documents")
	requireContains(t, out, "Photos")
	if got := strings.Count(out, "paused"); got != 1 {
		t.Fatalf("paused appears %d times, want 1:\n%s", got, out)
	}
	if got := strings.Count(out, "active"); got != 1 {
		t.Fatalf("active appears %d times, want 1:\n%s", got, out)
	}
	// folder2 has no stats entry.
	requireContains(t, out, "never")
}

func TestFoldersCommandFallsBackToIDLabel(t *testing.T) {
	server := newDaemon(t, map[string]string{
		"/rest/config/folders": `[{"id":"abcd-1234","label":"","paused":false}]`,
		"/rest/stats/folder":   `{}`,
	})

	out, _, err := runCLI(t, server.URL, "folders")
	if err != nil {
		t.Fatalf("folders: %v", err)
	}
	requireContains(t, out, "abcd-1234")
}

func TestFoldersCommandDetail(t *testing.T) {
	server := newDaemon(t, map[string]string{
		"/rest/db/status":     `{"state":"idle","globalFiles":120}`,
		"/rest/folder/errors": `{"folder":"folder1","errors":[{"path":"a/b.txt","error":"permission denied"}]}`,
	})

	out, _, err := runCLI(t, server.URL, "folders", "--id", "folder1")
	if err != nil {
		t.Fatalf("folders --id: %v", err)
	}
	requireContains(t, out, `"state": "idle"`)
	requireContains(t, out, "Pull errors (1):")
	requireContains(t, out, "a/b.txt: permission denied")
}
