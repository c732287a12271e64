package theme

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines a complete color palette for the TUI
type Theme struct {
	// Base colors
	Base     lipgloss.Color // Background
	Mantle   lipgloss.Color // Slightly lighter bg
	Crust    lipgloss.Color // Darkest bg
	Surface0 lipgloss.Color // Surface
	Surface1 lipgloss.Color // Surface highlight
	Surface2 lipgloss.Color // Surface bright

	// Text colors
	Text    lipgloss.Color // Primary text
	Subtext lipgloss.Color // Secondary text
	Overlay lipgloss.Color // Dimmed text

	// Accent colors
	Pink     lipgloss.Color
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Sky      lipgloss.Color
	Sapphire lipgloss.Color
	Blue     lipgloss.Color
	Lavender lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Channel accent colors
	WhatsApp   lipgloss.Color
	Telegram   lipgloss.Color
	Discord    lipgloss.Color
	Slack      lipgloss.Color
	Signal     lipgloss.Color
	IMessage   lipgloss.Color
	GoogleChat lipgloss.Color
	Nostr      lipgloss.Color
	Extension  lipgloss.Color
}

// Catppuccin Mocha - the flagship dark theme
var CatppuccinMocha = Theme{
	Base:     lipgloss.Color("#1e1e2e"),
	Mantle:   lipgloss.Color("#181825"),
	Crust:    lipgloss.Color("#11111b"),
	Surface0: lipgloss.Color("#313244"),
	Surface1: lipgloss.Color("#45475a"),
	Surface2: lipgloss.Color("#585b70"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Overlay: lipgloss.Color("#6c7086"),

	Pink:     lipgloss.Color("#f5c2e7"),
	Mauve:    lipgloss.Color("#cba6f7"),
	Red:      lipgloss.Color("#f38ba8"),
	Peach:    lipgloss.Color("#fab387"),
	Yellow:   lipgloss.Color("#f9e2af"),
	Green:    lipgloss.Color("#a6e3a1"),
	Teal:     lipgloss.Color("#94e2d5"),
	Sky:      lipgloss.Color("#89dceb"),
	Sapphire: lipgloss.Color("#74c7ec"),
	Blue:     lipgloss.Color("#89b4fa"),
	Lavender: lipgloss.Color("#b4befe"),

	Primary:   lipgloss.Color("#89b4fa"), // Blue
	Secondary: lipgloss.Color("#cba6f7"), // Mauve
	Success:   lipgloss.Color("#a6e3a1"), // Green
	Warning:   lipgloss.Color("#f9e2af"), // Yellow
	Error:     lipgloss.Color("#f38ba8"), // Red
	Info:      lipgloss.Color("#89dceb"), // Sky

	WhatsApp:   lipgloss.Color("#a6e3a1"), // Green (WhatsApp brand)
	Telegram:   lipgloss.Color("#89dceb"), // Sky (Telegram blue)
	Discord:    lipgloss.Color("#b4befe"), // Lavender (blurple)
	Slack:      lipgloss.Color("#cba6f7"), // Mauve (Slack aubergine)
	Signal:     lipgloss.Color("#89b4fa"), // Blue
	IMessage:   lipgloss.Color("#74c7ec"), // Sapphire
	GoogleChat: lipgloss.Color("#f9e2af"), // Yellow
	Nostr:      lipgloss.Color("#f5c2e7"), // Pink
	Extension:  lipgloss.Color("#94e2d5"), // Teal
}

// Catppuccin Macchiato - darker variant
var CatppuccinMacchiato = Theme{
	Base:     lipgloss.Color("#24273a"),
	Mantle:   lipgloss.Color("#1e2030"),
	Crust:    lipgloss.Color("#181926"),
	Surface0: lipgloss.Color("#363a4f"),
	Surface1: lipgloss.Color("#494d64"),
	Surface2: lipgloss.Color("#5b6078"),

	Text:    lipgloss.Color("#cad3f5"),
	Subtext: lipgloss.Color("#a5adcb"),
	Overlay: lipgloss.Color("#6e738d"),

	Pink:     lipgloss.Color("#f5bde6"),
	Mauve:    lipgloss.Color("#c6a0f6"),
	Red:      lipgloss.Color("#ed8796"),
	Peach:    lipgloss.Color("#f5a97f"),
	Yellow:   lipgloss.Color("#eed49f"),
	Green:    lipgloss.Color("#a6da95"),
	Teal:     lipgloss.Color("#8bd5ca"),
	Sky:      lipgloss.Color("#91d7e3"),
	Sapphire: lipgloss.Color("#7dc4e4"),
	Blue:     lipgloss.Color("#8aadf4"),
	Lavender: lipgloss.Color("#b7bdf8"),

	Primary:   lipgloss.Color("#8aadf4"),
	Secondary: lipgloss.Color("#c6a0f6"),
	Success:   lipgloss.Color("#a6da95"),
	Warning:   lipgloss.Color("#eed49f"),
	Error:     lipgloss.Color("#ed8796"),
	Info:      lipgloss.Color("#91d7e3"),

	WhatsApp:   lipgloss.Color("#a6da95"),
	Telegram:   lipgloss.Color("#91d7e3"),
	Discord:    lipgloss.Color("#b7bdf8"),
	Slack:      lipgloss.Color("#c6a0f6"),
	Signal:     lipgloss.Color("#8aadf4"),
	IMessage:   lipgloss.Color("#7dc4e4"),
	GoogleChat: lipgloss.Color("#eed49f"),
	Nostr:      lipgloss.Color("#f5bde6"),
	Extension:  lipgloss.Color("#8bd5ca"),
}

// Catppuccin Latte - light theme for light terminals
var CatppuccinLatte = Theme{
	Base:     lipgloss.Color("#eff1f5"),
	Mantle:   lipgloss.Color("#e6e9ef"),
	Crust:    lipgloss.Color("#dce0e8"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Surface2: lipgloss.Color("#acb0be"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Overlay: lipgloss.Color("#7c7f93"),

	Pink:     lipgloss.Color("#ea76cb"),
	Mauve:    lipgloss.Color("#8839ef"),
	Red:      lipgloss.Color("#d20f39"),
	Peach:    lipgloss.Color("#fe640b"),
	Yellow:   lipgloss.Color("#df8e1d"),
	Green:    lipgloss.Color("#40a02b"),
	Teal:     lipgloss.Color("#179299"),
	Sky:      lipgloss.Color("#04a5e5"),
	Sapphire: lipgloss.Color("#209fb5"),
	Blue:     lipgloss.Color("#1e66f5"),
	Lavender: lipgloss.Color("#7287fd"),

	Primary:   lipgloss.Color("#1e66f5"),
	Secondary: lipgloss.Color("#8839ef"),
	Success:   lipgloss.Color("#40a02b"),
	Warning:   lipgloss.Color("#df8e1d"),
	Error:     lipgloss.Color("#d20f39"),
	Info:      lipgloss.Color("#04a5e5"),

	WhatsApp:   lipgloss.Color("#40a02b"),
	Telegram:   lipgloss.Color("#04a5e5"),
	Discord:    lipgloss.Color("#7287fd"),
	Slack:      lipgloss.Color("#8839ef"),
	Signal:     lipgloss.Color("#1e66f5"),
	IMessage:   lipgloss.Color("#209fb5"),
	GoogleChat: lipgloss.Color("#df8e1d"),
	Nostr:      lipgloss.Color("#ea76cb"),
	Extension:  lipgloss.Color("#179299"),
}

// Nord - popular arctic theme
var Nord = Theme{
	Base:     lipgloss.Color("#2e3440"),
	Mantle:   lipgloss.Color("#272c36"),
	Crust:    lipgloss.Color("#21262e"),
	Surface0: lipgloss.Color("#3b4252"),
	Surface1: lipgloss.Color("#434c5e"),
	Surface2: lipgloss.Color("#4c566a"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Overlay: lipgloss.Color("#7b88a1"),

	Pink:     lipgloss.Color("#b48ead"),
	Mauve:    lipgloss.Color("#b48ead"),
	Red:      lipgloss.Color("#bf616a"),
	Peach:    lipgloss.Color("#d08770"),
	Yellow:   lipgloss.Color("#ebcb8b"),
	Green:    lipgloss.Color("#a3be8c"),
	Teal:     lipgloss.Color("#8fbcbb"),
	Sky:      lipgloss.Color("#88c0d0"),
	Sapphire: lipgloss.Color("#81a1c1"),
	Blue:     lipgloss.Color("#5e81ac"),
	Lavender: lipgloss.Color("#b48ead"),

	Primary:   lipgloss.Color("#88c0d0"),
	Secondary: lipgloss.Color("#b48ead"),
	Success:   lipgloss.Color("#a3be8c"),
	Warning:   lipgloss.Color("#ebcb8b"),
	Error:     lipgloss.Color("#bf616a"),
	Info:      lipgloss.Color("#81a1c1"),

	WhatsApp:   lipgloss.Color("#a3be8c"),
	Telegram:   lipgloss.Color("#88c0d0"),
	Discord:    lipgloss.Color("#b48ead"),
	Slack:      lipgloss.Color("#b48ead"),
	Signal:     lipgloss.Color("#5e81ac"),
	IMessage:   lipgloss.Color("#81a1c1"),
	GoogleChat: lipgloss.Color("#ebcb8b"),
	Nostr:      lipgloss.Color("#b48ead"),
	Extension:  lipgloss.Color("#8fbcbb"),
}

// Plain is a no-color theme that uses empty/default colors.
// Used when NO_COLOR is set or for accessibility needs.
var Plain = Theme{}

// Default is the currently active theme
var Default = CatppuccinMocha

// NoColorEnabled returns true if color output should be disabled.
// Respects the NO_COLOR standard (https://no-color.org/):
// - If NO_COLOR exists in environment (any value), colors are disabled
// - BRIDGEMON_NO_COLOR=1 also disables colors
// - BRIDGEMON_NO_COLOR=0 forces colors ON (overrides NO_COLOR)
func NoColorEnabled() bool {
	noColor := strings.TrimSpace(os.Getenv("BRIDGEMON_NO_COLOR"))
	switch strings.ToLower(noColor) {
	case "0", "false", "no", "off":
		return false
	case "1", "true", "yes", "on":
		return true
	}

	_, noColorSet := os.LookupEnv("NO_COLOR")
	return noColorSet
}

// FromName returns a theme by name
func FromName(name string) Theme {
	if NoColorEnabled() {
		return Plain
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "none", "no-color", "nocolor":
		return Plain
	case "macchiato":
		return CatppuccinMacchiato
	case "nord":
		return Nord
	case "latte", "light":
		return CatppuccinLatte
	case "mocha":
		return CatppuccinMocha
	default:
		return autoTheme()
	}
}

// Current returns the current theme based on env var or default
func Current() Theme {
	return FromName(os.Getenv("BRIDGEMON_THEME"))
}

// detectDarkBackground inspects the terminal to determine if a dark background
// is in use. It is defined as a variable for testability.
var detectDarkBackground = func() bool {
	output := termenv.NewOutput(os.Stdout)
	return output.HasDarkBackground()
}

var (
	cachedAutoTheme Theme
	autoThemeOnce   sync.Once
)

func autoTheme() Theme {
	autoThemeOnce.Do(func() {
		cachedAutoTheme = CatppuccinMocha

		defer func() {
			if recover() != nil {
				cachedAutoTheme = CatppuccinMocha
			}
		}()

		if detectDarkBackground() {
			cachedAutoTheme = CatppuccinMocha
		} else {
			cachedAutoTheme = CatppuccinLatte
		}
	})
	return cachedAutoTheme
}

// ChannelColor returns the accent color for a channel key. Unknown keys
// (extension channels) get the extension accent.
func (t Theme) ChannelColor(key string) lipgloss.Color {
	switch strings.ToLower(key) {
	case "whatsapp":
		return t.WhatsApp
	case "telegram":
		return t.Telegram
	case "discord":
		return t.Discord
	case "slack":
		return t.Slack
	case "signal":
		return t.Signal
	case "imessage":
		return t.IMessage
	case "googlechat":
		return t.GoogleChat
	case "nostr":
		return t.Nostr
	default:
		return t.Extension
	}
}
