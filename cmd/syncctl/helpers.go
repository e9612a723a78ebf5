package main

import (
	"fmt"
	"time"
)

const (
	kb = int64(1) << 10
	mb = kb << 10
	gb = mb << 10
	tb = gb << 10
)

// formatBytes renders a byte count with 1024-based units and one decimal.
func formatBytes(bytes int64) string {
	switch {
	case bytes >= tb:
		return fmt.Sprintf("%.1f TB", float64(bytes)/float64(tb))
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// formatUptime renders whole seconds as "12h 34m".
func formatUptime(seconds int64) string {
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// formatSince renders an RFC 3339 timestamp as a coarse relative age.
// Unparseable input passes through unchanged so raw daemon data still shows.
func formatSince(timestamp string) string {
	parsed, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	elapsed := time.Since(parsed)
	switch {
	case elapsed >= 24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours())/24)
	case elapsed >= time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed >= time.Minute:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	default:
		return "just now"
	}
}

// shortID abbreviates a device ID to its first group.
func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
