package plan

import (
	"errors"
	"testing"
)

func TestDistribution(t *testing.T) {
	testCases := []struct {
		total, depth uint64
		perDir       uint64
		files        uint64
		remainder    uint64
		names        uint64
	}{
		{100, 5, 20, 100, 0, 105},
		{7, 3, 2, 6, 1, 9},
		{1000000, 20, 50000, 1000000, 0, 1000020},
		{19, 10, 1, 10, 9, 20},
		{1, 1, 1, 1, 0, 2},
	}

	for _, tc := range testCases {
		target := NewTarget("/tmp", tc.total, tc.depth)
		if err := target.Validate(); err != nil {
			t.Fatalf("%v: unexpected error: %v", target, err)
		}
		if got := target.PerDirectory(); got != tc.perDir {
			t.Errorf("%v: PerDirectory() = %d, want %d", target, got, tc.perDir)
		}
		if got := target.Files(); got != tc.files {
			t.Errorf("%v: Files() = %d, want %d", target, got, tc.files)
		}
		if got := target.Remainder(); got != tc.remainder {
			t.Errorf("%v: Remainder() = %d, want %d", target, got, tc.remainder)
		}
		if got := target.Names(); got != tc.names {
			t.Errorf("%v: Names() = %d, want %d", target, got, tc.names)
		}
		if target.Levels() != tc.depth {
			t.Errorf("%v: Levels() = %d, want %d", target, target.Levels(), tc.depth)
		}
		if target.Remainder() >= tc.depth {
			t.Errorf("%v: remainder %d not below depth", target, target.Remainder())
		}
	}
}

func TestValidate(t *testing.T) {
	if err := NewTarget("/tmp", 10, 0).Validate(); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("depth 0: expected ErrInvalidDepth, got %v", err)
	}
	if err := NewTarget("/tmp", 3, 5).Validate(); !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("3 inodes over 5 levels: expected ErrEmptyLevel, got %v", err)
	}
	if err := NewTarget("/tmp", 0, 1).Validate(); !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("0 inodes: expected ErrEmptyLevel, got %v", err)
	}
	if got := NewTarget("/tmp", 10, 0).PerDirectory(); got != 0 {
		t.Errorf("PerDirectory with depth 0 = %d, want 0", got)
	}
}
