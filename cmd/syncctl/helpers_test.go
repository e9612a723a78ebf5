package main

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{12345678, "11.8 MB"},
		{23456789, "22.4 MB"},
		{3 << 30, "3.0 GB"},
		{2 << 40, "2.0 TB"},
	}
	for _, tc := range cases {
		if got := formatBytes(tc.in); got != tc.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0h 0m"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
		{90000, "25h 0m"},
	}
	for _, tc := range cases {
		if got := formatUptime(tc.in); got != tc.want {
			t.Errorf("formatUptime(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSince(t *testing.T) {
	now := time.Now()
	cases := []struct {
		in   string
		want string
	}{
		{now.Add(-30 * time.Second).Format(time.RFC3339), "just now"},
		{now.Add(-5 * time.Minute).Format(time.RFC3339), "5m ago"},
		{now.Add(-3 * time.Hour).Format(time.RFC3339), "3h ago"},
		{now.Add(-48 * time.Hour).Format(time.RFC3339), "2d ago"},
		{"not-a-timestamp", "not-a-timestamp"},
	}
	for _, tc := range cases {
		if got := formatSince(tc.in); got != tc.want {
			t.Errorf("formatSince(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("ABCDEFG-HIJKLMN"); got != "ABCDEFG" {
		t.Errorf("shortID = %q, want ABCDEFG", got)
	}
	if got := shortID("AB"); got != "AB" {
		t.Errorf("short input should pass through, got %q", got)
	}
}
