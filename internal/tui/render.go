package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/fitnesstrack/internal/session"
)

const brandName = "fitnessTrack"

// navLabel is the navbar caption of a tab; the overview is the dashboard.
func navLabel(t session.Tab) string {
	if t == session.TabOverview {
		return "Dashboard"
	}
	return t.Title()
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (a *App) renderNavbar() string {
	s := a.styles
	name := s.brand.Render(brandName)

	active := a.tabs.Active()
	var links []string
	for _, t := range session.Tabs() {
		if t == active {
			links = append(links, s.activeTab.Render(navLabel(t)))
		} else {
			links = append(links, s.inactiveTab.Render(navLabel(t)))
		}
	}
	left := name + s.tabSep.Render("  ") + strings.Join(links, s.tabSep.Render("│"))

	themeIcon := "☾ dark"
	if !a.theme.Dark() {
		themeIcon = "☀ light"
	}
	right := s.tabSep.Render(themeIcon+"  ") + s.inactiveTab.Render(userName+" ▾")

	if a.width <= 0 {
		return s.navBar.Render(left + "  " + right)
	}
	inner := a.width - s.navBar.GetHorizontalFrameSize()
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	line := left
	if gap > 0 {
		line += s.tabSep.Render(strings.Repeat(" ", gap)) + right
	}
	return s.navBar.Width(a.width).Render(line)
}

// renderToolbar is the day selector plus the overview's layout toggle.
func (a *App) renderToolbar() string {
	s := a.styles
	prev := s.cursor.Render("‹")
	next := s.cursor.Render("›")
	if !a.day.CanGoForward() {
		next = s.disabled.Render("›")
	}
	day := prev + " " + s.value.Render(padRight(a.day.Label(), 9)) + " " + next

	parts := []string{day, s.muted.Render(a.tabs.Active().Title())}
	if a.tabs.Active() == session.TabOverview {
		toggle := "☰ Row View"
		if !a.gridView {
			toggle = "▦ Grid View"
		}
		parts = append(parts, s.label.Render(toggle))
	}
	return "  " + strings.Join(parts, s.muted.Render("  ·  "))
}

func (a *App) renderFooter(bindings []key.Binding) string {
	// Every character carries the footer background.
	bg := a.styles.p.Mantle
	keyStyle := a.styles.helpKey.Background(bg)
	descStyle := a.styles.helpDesc.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return a.styles.footer.Render(content)
	}
	inner := a.width - a.styles.footer.GetHorizontalFrameSize()
	return a.styles.footer.Width(a.width).Render(truncate(content, inner))
}

func (a *App) footerBindings() []key.Binding {
	scope := a.scope()
	out := a.keys.HelpBindings(scope)
	if scope == scopeGoalModal || scope == scopeUserMenu {
		return out
	}
	return append(out, a.keys.HelpBindings(scopeGlobal)...)
}

func (a *App) renderStatus() string {
	text := a.status
	if text == "" {
		text = fmt.Sprintf("%s · %s · %s theme", a.day.Label(), a.tabs.Active().Title(), a.theme.Theme())
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	style := a.styles.statusBar
	if a.statusErr {
		style = a.styles.statusErr
	}
	if a.width == 0 {
		return style.Render(flat)
	}
	return style.Width(a.width).Render(truncate(flat, a.width-style.GetHorizontalFrameSize()))
}

// renderPageFooter closes the scrollable page.
func (a *App) renderPageFooter(width int) string {
	s := a.styles
	heart := lipgloss.NewStyle().Foreground(s.p.Red).Render("♥")
	lines := []string{
		s.pageFooter.Render(fmt.Sprintf("© %d %s. All rights reserved.", a.year, brandName)),
		s.pageFooter.Render(strings.Join(socialLinks, "  ·  ")),
		s.pageFooter.Render("Made with ") + heart + s.pageFooter.Render(" for healthier lives"),
	}
	block := strings.Join(lines, "\n")
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Align(lipgloss.Center).Render(block))
}

var socialLinks = []string{"Instagram", "Twitter", "Facebook", "GitHub"}

// renderSection boxes content under a title, the way every dashboard panel looks.
func (a *App) renderSection(title, content string, width int) string {
	s := a.styles
	inner := width - s.section.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	header := padRight(s.title.Render(title), inner)
	separator := lipgloss.NewStyle().Foreground(s.p.Surface2).Render(strings.Repeat("─", inner))
	return s.section.Width(width - s.section.GetHorizontalBorderSize()).Render(header + "\n" + separator + "\n" + content)
}
