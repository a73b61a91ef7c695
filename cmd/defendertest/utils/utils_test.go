package utils

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/mod/semver"
)

func TestVersion(t *testing.T) {
	if !semver.IsValid(GetVersion()) {
		t.Errorf("invalid version string: %s", GetVersion())
	}
	if GetClient() != "defendertest/"+GetVersion() {
		t.Errorf("unexpected client string: %s", GetClient())
	}
}

func TestProgramName(t *testing.T) {
	testCases := map[string]string{
		"":                     "defendertest",
		"defendertest":         "defendertest",
		"./defendertest":       "defendertest",
		"/usr/local/bin/dtest": "dtest",
	}
	for argv0, expected := range testCases {
		if got := ProgramName(argv0); got != expected {
			t.Errorf("ProgramName(%q) = %q, want %q", argv0, got, expected)
		}
	}
}

func TestHumanTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	got := HumanTime(ts)
	if !strings.HasPrefix(got, "2024-03-01T10:00:00Z (") || !strings.HasSuffix(got, " ago)") {
		t.Errorf("unexpected human time %q", got)
	}
}
