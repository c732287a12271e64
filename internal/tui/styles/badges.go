// Package styles provides badge and text rendering helpers for consistent
// UI elements across the dashboard.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bridgemon/internal/channel"
	"bridgemon/internal/tui/icons"
	"bridgemon/internal/tui/theme"
)

// BadgeStyle defines the visual style of a badge
type BadgeStyle int

const (
	// BadgeStyleDefault is a standard badge with padding
	BadgeStyleDefault BadgeStyle = iota
	// BadgeStyleCompact is a minimal badge without padding
	BadgeStyleCompact
	// BadgeStylePill is a rounded pill-style badge
	BadgeStylePill
)

// BadgeOptions configures badge rendering
type BadgeOptions struct {
	Style    BadgeStyle
	Bold     bool
	ShowIcon bool
}

// DefaultBadgeOptions returns sensible defaults for badge rendering
func DefaultBadgeOptions() BadgeOptions {
	return BadgeOptions{
		Style:    BadgeStyleDefault,
		Bold:     true,
		ShowIcon: true,
	}
}

// StatusBadge renders a channel status class badge using theme colors.
func StatusBadge(class channel.StatusClass, opts ...BadgeOptions) string {
	t := theme.Current()
	ic := icons.Current()
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	var bgColor lipgloss.Color
	var icon string

	switch class {
	case channel.ClassError:
		bgColor = t.Error
		icon = ic.Cross
	case channel.ClassConnected:
		bgColor = t.Success
		icon = ic.Check
	case channel.ClassRunning:
		bgColor = t.Info
		icon = ic.Dot
	case channel.ClassConfigured:
		bgColor = t.Warning
		icon = ic.Circle
	default:
		bgColor = t.Overlay
		icon = ic.Circle
	}

	text := class.Summary()
	if opt.ShowIcon {
		text = icon + " " + text
	}

	return renderBadge(text, bgColor, t.Base, opt)
}

// ChannelBadge renders a badge for a channel key using its accent color.
func ChannelBadge(key, label string, opts ...BadgeOptions) string {
	t := theme.Current()
	ic := icons.Current()
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	if label == "" {
		label = key
	}
	text := label
	if opt.ShowIcon {
		text = ic.ChannelIcon(key) + " " + label
	}

	return renderBadge(text, t.ChannelColor(key), t.Base, opt)
}

// CountBadge renders a simple numeric count badge
func CountBadge(count int, bgColor, fgColor lipgloss.Color) string {
	return lipgloss.NewStyle().
		Background(bgColor).
		Foreground(fgColor).
		Bold(true).
		Padding(0, 1).
		Render(fmt.Sprintf("%d", count))
}

// TextBadge renders a simple text badge with custom colors
func TextBadge(text string, bgColor, fgColor lipgloss.Color, opts ...BadgeOptions) string {
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	return renderBadge(text, bgColor, fgColor, opt)
}

// LivenessIcon renders a colored icon for a liveness value.
func LivenessIcon(l channel.Liveness) string {
	t := theme.Current()
	ic := icons.Current()

	var color lipgloss.Color
	var icon string
	switch l {
	case channel.LivenessYes:
		color = t.Success
		icon = ic.Check
	case channel.LivenessNo:
		color = t.Error
		icon = ic.Cross
	case channel.LivenessActive:
		color = t.Warning
		icon = ic.Dot
	default:
		color = t.Overlay
		icon = ic.Circle
	}

	return lipgloss.NewStyle().Foreground(color).Render(icon)
}

// renderBadge is the internal badge rendering function
func renderBadge(text string, bgColor, fgColor lipgloss.Color, opt BadgeOptions) string {
	style := lipgloss.NewStyle().
		Background(bgColor).
		Foreground(fgColor)

	if opt.Bold {
		style = style.Bold(true)
	}

	switch opt.Style {
	case BadgeStyleCompact:
		// No padding
	case BadgeStylePill:
		style = style.Padding(0, 2)
	default:
		style = style.Padding(0, 1)
	}

	return style.Render(text)
}

// BadgeBar renders badges separated by a consistent spacer
func BadgeBar(badges ...string) string {
	return strings.Join(badges, "  ")
}

// Truncate shortens a string to the given display width, appending an
// ellipsis. Width is measured in terminal cells, not bytes.
func Truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads a string to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
