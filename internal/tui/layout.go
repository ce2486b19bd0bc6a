package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the rows outside the scrollable body: navbar, toolbar,
// their spacers, the status line and the key footer.
const chromeHeight = 6

func (a *App) View() string {
	header := a.renderNavbar() + "\n\n" + a.renderToolbar() + "\n"
	status := a.renderStatus()
	footer := a.renderFooter(a.footerBindings())

	var body string
	if a.width == 0 || a.height == 0 {
		body = a.renderPage(a.width)
	} else {
		body = a.body.View()
	}
	view := a.placeWithFooter(header+"\n"+body, status, footer)

	if a.board.Expanded() {
		view = a.float(view, a.renderLeaderboard(), anchorPanel)
	} else if a.board.Minimized() {
		view = a.float(view, a.renderLeaderboardPill(), anchorPill)
	}
	switch a.modal {
	case modalUserMenu:
		view = a.float(view, a.renderUserMenu(), anchorMenu)
	case modalGoal:
		view = a.float(view, a.goalModalBox(), anchorCenter)
	}
	return view
}

// refresh sizes the body viewport and re-renders the page into it.
func (a *App) refresh() {
	if a.width <= 0 || a.height <= 0 {
		return
	}
	a.body.Width = a.width
	a.body.Height = max(a.height-chromeHeight, 1)
	a.body.SetContent(a.renderPage(a.width))
}

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(a.height-2, 1)
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines so stale cells from the previous frame are cleared.
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}
