package theme

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-built lipgloss styles for the theme
type Styles struct {
	// Base styles
	Header  lipgloss.Style
	Title   lipgloss.Style
	Divider lipgloss.Style

	// Text styles
	Normal    lipgloss.Style
	Bold      lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Component styles
	Box          lipgloss.Style
	BoxTitle     lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListCursor   lipgloss.Style

	// Tab bar
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Help/status bar
	Help      lipgloss.Style
	StatusBar lipgloss.Style
}

// NewStyles creates a Styles instance from a theme
func NewStyles(t Theme) Styles {
	styles := Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),

		Divider: lipgloss.NewStyle().
			Foreground(t.Surface2),

		Normal: lipgloss.NewStyle().
			Foreground(t.Text),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),

		Dim: lipgloss.NewStyle().
			Foreground(t.Overlay),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Lavender),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Success),

		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Warning),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),

		Info: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Info),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Surface2).
			Padding(0, 1),

		BoxTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Text).
			Padding(0, 1),

		ListSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Base).
			Background(t.Primary).
			Padding(0, 1),

		ListCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		Tab: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Underline(true).
			Padding(0, 2),

		Help: lipgloss.NewStyle().
			Foreground(t.Overlay),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Background(t.Surface0).
			Padding(0, 1),
	}

	// Guard rails for no-color environments: do not rely on subtle
	// background shades for selection, and avoid encoding status meaning
	// by color alone.
	if t == Plain {
		styles.ListSelected = lipgloss.NewStyle().
			Bold(true).
			Reverse(true).
			Padding(0, 1)
		styles.TabActive = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Padding(0, 2)
		styles.Warning = styles.Warning.Underline(true)
		styles.Error = styles.Error.Underline(true)
	}

	return styles
}

// DefaultStyles returns styles for the current theme
func DefaultStyles() Styles {
	return NewStyles(Current())
}
