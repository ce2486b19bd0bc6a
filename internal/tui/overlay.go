package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// anchor names where a floating panel sits over the dashboard.
type anchor int

const (
	anchorMenu   anchor = iota // under the navbar avatar
	anchorPanel                // leaderboard, right edge below the navbar
	anchorPill                 // bottom-right corner of the body
	anchorCenter               // goal modal
)

// float draws block over view at the anchor. Before the first WindowSizeMsg
// there is no grid to draw on, so the block goes under the view.
func (a *App) float(view, block string, at anchor) string {
	if a.width == 0 || a.height == 0 {
		return view + "\n\n" + block
	}
	w, h := lipgloss.Width(block), lipgloss.Height(block)
	body := max(a.height-2, 1)

	var x, y int
	switch at {
	case anchorMenu:
		x, y = a.width-w-1, 1
	case anchorPanel:
		x, y = a.width-w-1, 2
	case anchorPill:
		x, y = a.width-w-2, body-1-h
	case anchorCenter:
		x, y = (a.width-w)/2, (body-h)/2
	}
	return stamp(view, block, max(x, 0), max(y, 0), a.width, body)
}

// stamp writes block into base with its top-left cell at (x, y). Rows at or
// past rows keep the status line and footer intact.
func stamp(base, block string, x, y, cols, rows int) string {
	lines := strings.Split(base, "\n")
	w := lipgloss.Width(block)
	for i, b := range strings.Split(block, "\n") {
		row := y + i
		if row >= len(lines) || row >= rows {
			break
		}
		line := padRight(lines[row], cols)
		head := padRight(ansi.Truncate(line, x, ""), x)
		tail := ansi.TruncateLeft(line, x+w, "")
		lines[row] = head + padRight(b, w) + tail
	}
	return strings.Join(lines, "\n")
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// truncate shortens s to width cells, ending in an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
