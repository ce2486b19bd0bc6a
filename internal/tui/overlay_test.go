package tui

import (
	"strings"
	"testing"
)

func TestStampReplacesCells(t *testing.T) {
	got := stamp("aaaa\nbbbb\ncccc", "XY", 1, 1, 4, 3)
	if got != "aaaa\nbXYb\ncccc" {
		t.Fatalf("stamp = %q", got)
	}
}

func TestStampStopsAtRowLimit(t *testing.T) {
	got := stamp("aaaa\nbbbb", "X\nY", 0, 1, 4, 2)
	if got != "aaaa\nXbbb" {
		t.Fatalf("stamp = %q", got)
	}
}

func TestStampPadsShortLines(t *testing.T) {
	got := stamp("ab", "X", 4, 0, 6, 1)
	if got != "ab  X " {
		t.Fatalf("stamp = %q", got)
	}
}

func TestFloatAnchors(t *testing.T) {
	a := &App{width: 8, height: 8}
	base := strings.TrimSuffix(strings.Repeat("........\n", 8), "\n")

	tests := []struct {
		at       anchor
		row, col int
	}{
		{anchorMenu, 1, 5},
		{anchorPanel, 2, 5},
		{anchorPill, 4, 4},
		{anchorCenter, 2, 3},
	}
	for _, tt := range tests {
		lines := strings.Split(a.float(base, "##", tt.at), "\n")
		if got := strings.Index(lines[tt.row], "##"); got != tt.col {
			t.Fatalf("anchor %d: row %d = %q, want ## at col %d", tt.at, tt.row, lines[tt.row], tt.col)
		}
	}
}

func TestFloatBeforeSizeAppends(t *testing.T) {
	a := &App{}
	if got := a.float("view", "menu", anchorMenu); got != "view\n\nmenu" {
		t.Fatalf("float = %q", got)
	}
}
