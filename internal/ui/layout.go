package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/worklance/internal/theme"
)

// SidebarWidth is the width of the navigation sidebar, border included.
const SidebarWidth = 24

// Layout manages the multi-panel terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
	ToastHeight     int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight, StatusBarHeight and ToastHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
		ToastHeight:     1,
	}
}

// ContentWidth returns the width left for a screen. Screens shown with the
// sidebar lose SidebarWidth columns.
func (l Layout) ContentWidth(withSidebar bool) int {
	if withSidebar {
		return max(l.Width-SidebarWidth, 0)
	}
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header, toast line and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.StatusBarHeight-l.ToastHeight, 0)
}

// RenderHeader renders the top header bar with a title and status text.
func (l Layout) RenderHeader(title string, status string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(status)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(statusRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		statusRendered,
	)
}

// NavEntry is one line of the sidebar.
type NavEntry struct {
	Label  string
	Key    string
	Active bool
}

// RenderSidebar renders the user line followed by the navigation entries.
func (l Layout) RenderSidebar(user string, extra string, entries []NavEntry) string {
	lines := []string{theme.SectionStyle.Render(user)}
	if extra != "" {
		lines = append(lines, theme.MutedStyle.Render(extra))
	}
	lines = append(lines, "")

	for _, e := range entries {
		label := e.Key + " " + e.Label
		if e.Active {
			lines = append(lines, theme.NavActiveStyle.Render(label))
		} else {
			lines = append(lines, theme.NavItemStyle.Render(label))
		}
	}

	return theme.SidebarStyle.
		Width(SidebarWidth - 1).
		Height(max(l.ContentHeight()-2, 0)).
		Render(strings.Join(lines, "\n"))
}

// RenderToast renders the transient message line, or a blank line.
func (l Layout) RenderToast(text string, isError bool) string {
	if text == "" {
		return ""
	}
	return theme.ToastStyle(isError).MaxWidth(l.Width).Render(text)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, toast line and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	toast string,
	statusBar string,
) string {
	content = lipgloss.NewStyle().
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		toast,
		statusBar,
	)
}

// Overlay centers a panel over the content area.
func (l Layout) Overlay(panel string) string {
	return lipgloss.Place(
		l.Width, l.ContentHeight(),
		lipgloss.Center, lipgloss.Center,
		panel,
	)
}
