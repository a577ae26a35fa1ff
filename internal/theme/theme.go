package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorIndigo  = lipgloss.AdaptiveColor{Dark: "#A5B4FC", Light: "#4338CA"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
	ColorBubble  = lipgloss.AdaptiveColor{Dark: "#343A40", Light: "#EEEEEE"}
	ColorOnBrand = lipgloss.AdaptiveColor{Dark: "#FFFFFF", Light: "#FFFFFF"}
)

// SetDarkMode switches every adaptive color between its dark and light value.
func SetDarkMode(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorOnBrand).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps the detail view content area.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// TitleStyle is the bold heading at the top of a screen.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	MarginBottom(1)

// SectionStyle heads a block inside a screen.
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

var (
	MutedStyle = lipgloss.NewStyle().Foreground(ColorGray)
	ValueStyle = lipgloss.NewStyle().Foreground(ColorWhite)
	PriceStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	MatchStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorIndigo)
)

// Sidebar navigation entries.
var (
	NavItemStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			PaddingLeft(2)

	NavActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue).
			PaddingLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorBlue)

	SidebarStyle = lipgloss.NewStyle().
			Padding(1, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ColorBorder)
)

// BadgeStyle renders the unread notification counter.
var BadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorOnBrand).
	Background(ColorRed).
	Padding(0, 1)

// Chat bubbles. Own messages are right-aligned by the caller.
var (
	ChatMineStyle = lipgloss.NewStyle().
			Foreground(ColorOnBrand).
			Background(ColorBlue).
			Padding(0, 1)

	ChatTheirsStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorBubble).
			Padding(0, 1)
)

// CountdownStyle returns the deadline line style: positive while time
// remains, alert once overdue.
func CountdownStyle(overdue bool) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	if overdue {
		return base.Foreground(ColorRed)
	}
	return base.Foreground(ColorBlue)
}

// ToastStyle returns the style of a transient message.
func ToastStyle(isError bool) lipgloss.Style {
	base := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.ThickBorder(), false, false, false, true)
	if isError {
		return base.Foreground(ColorRed).BorderForeground(ColorRed)
	}
	return base.Foreground(ColorGreen).BorderForeground(ColorGreen)
}

// AlertStyle frames the blocking connection alert.
var AlertStyle = lipgloss.NewStyle().
	Padding(1, 3).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(ColorRed).
	Foreground(ColorWhite)

// StatusStyle returns a color-coded style for a job, proposal or contract status.
func StatusStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case "open", "active", "pending":
		return base.Foreground(ColorBlue)
	case "in_escrow", "in_progress", "draft":
		return base.Foreground(ColorYellow)
	case "completed", "accepted":
		return base.Foreground(ColorGreen)
	case "cancelled", "rejected":
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}
