package icons

import (
	"os"
	"reflect"
	"strings"
)

// IconSet contains all icons used in the TUI
type IconSet struct {
	// Navigation
	Pointer    string
	ArrowUp    string
	ArrowDown  string
	ArrowLeft  string
	ArrowRight string
	Enter      string

	// Status
	Check    string
	Cross    string
	Dot      string
	Circle   string
	Warning  string
	Info     string
	Question string

	// Channels
	WhatsApp   string
	Telegram   string
	Discord    string
	Slack      string
	Signal     string
	IMessage   string
	GoogleChat string
	Nostr      string
	Extension  string

	// Objects
	Account string
	Config  string
	Link    string
	Probe   string
	QR      string

	// Help
	Help string
}

// NerdFonts is the full icon set using Nerd Font symbols
var NerdFonts = IconSet{
	Pointer:    "❯",
	ArrowUp:    "",
	ArrowDown:  "",
	ArrowLeft:  "",
	ArrowRight: "",
	Enter:      "⏎",

	Check:    "",
	Cross:    "",
	Dot:      "●",
	Circle:   "○",
	Warning:  "",
	Info:     "",
	Question: "",

	WhatsApp:   "",
	Telegram:   "",
	Discord:    "󰙯",
	Slack:      "󰒱",
	Signal:     "󰭹",
	IMessage:   "󰍦",
	GoogleChat: "󰊤",
	Nostr:      "󰐲",
	Extension:  "",

	Account: "",
	Config:  "",
	Link:    "",
	Probe:   "󰓾",
	QR:      "󰐲",

	Help: "",
}

// Unicode is a fallback icon set using standard Unicode
var Unicode = IconSet{
	Pointer:    "›",
	ArrowUp:    "↑",
	ArrowDown:  "↓",
	ArrowLeft:  "←",
	ArrowRight: "→",
	Enter:      "↵",

	Check:    "✓",
	Cross:    "✗",
	Dot:      "•",
	Circle:   "○",
	Warning:  "⚠",
	Info:     "ℹ",
	Question: "?",

	WhatsApp:   "◆",
	Telegram:   "◆",
	Discord:    "◆",
	Slack:      "◆",
	Signal:     "◆",
	IMessage:   "◆",
	GoogleChat: "◆",
	Nostr:      "◆",
	Extension:  "◇",

	Account: "☺",
	Config:  "⚙",
	Link:    "∞",
	Probe:   "◎",
	QR:      "▦",

	Help: "?",
}

// ASCII is a minimal fallback for terminals without Unicode
var ASCII = IconSet{
	Pointer:    ">",
	ArrowUp:    "^",
	ArrowDown:  "v",
	ArrowLeft:  "<",
	ArrowRight: ">",
	Enter:      "[Enter]",

	Check:    "[x]",
	Cross:    "[X]",
	Dot:      "*",
	Circle:   "o",
	Warning:  "!",
	Info:     "i",
	Question: "?",

	WhatsApp:   "[W]",
	Telegram:   "[T]",
	Discord:    "[D]",
	Slack:      "[S]",
	Signal:     "[G]",
	IMessage:   "[M]",
	GoogleChat: "[C]",
	Nostr:      "[N]",
	Extension:  "[+]",

	Account: "[A]",
	Config:  "[=]",
	Link:    "[L]",
	Probe:   "(o)",
	QR:      "[#]",

	Help: "?",
}

// WithFallback fills empty icon slots from the fallback set.
func (i IconSet) WithFallback(fallback IconSet) IconSet {
	if reflect.DeepEqual(i, fallback) {
		return i
	}

	out := i
	dst := reflect.ValueOf(&out).Elem()
	fb := reflect.ValueOf(fallback)

	for idx := 0; idx < dst.NumField(); idx++ {
		f := dst.Field(idx)
		if f.Kind() != reflect.String {
			continue
		}
		if f.String() != "" {
			continue
		}
		f.SetString(fb.Field(idx).String())
	}

	return out
}

// HasNerdFonts detects if the terminal likely supports Nerd Fonts
func HasNerdFonts() bool {
	if os.Getenv("NERD_FONTS") == "1" {
		return true
	}
	if os.Getenv("NERD_FONTS") == "0" {
		return false
	}

	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Alacritty", "kitty", "Hyper", "vscode":
		return true
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("WEZTERM_PANE") != "" {
		return true
	}

	return false
}

// HasUnicode detects if the terminal supports Unicode
func HasUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	if strings.Contains(strings.ToLower(lang), "utf") ||
		strings.Contains(strings.ToLower(lcAll), "utf") {
		return true
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "xterm") ||
		strings.Contains(term, "256color") ||
		strings.Contains(term, "screen") ||
		strings.Contains(term, "tmux") {
		return true
	}

	return true // Default to Unicode in modern era
}

// FromName returns the icon set for a configured name ("nerd", "unicode",
// "ascii", "auto").
func FromName(name string) IconSet {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nerd", "nerdfonts":
		return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
	case "unicode":
		return Unicode.WithFallback(ASCII)
	case "ascii":
		return ASCII
	default:
		if HasNerdFonts() {
			return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
		}
		if HasUnicode() {
			return Unicode.WithFallback(ASCII)
		}
		return ASCII
	}
}

// Detect returns the appropriate icon set for the current terminal
func Detect() IconSet {
	if name := os.Getenv("BRIDGEMON_ICONS"); name != "" {
		return FromName(name)
	}
	// Default to ASCII to avoid width drift issues.
	return ASCII
}

// Default is the auto-detected icon set
var Default = Detect()

// Current returns the currently active icon set
func Current() IconSet {
	return Default
}

// SetDefault allows overriding the default icon set
func SetDefault(icons IconSet) {
	Default = icons
}

// ChannelIcon returns the icon for a channel key
func (i IconSet) ChannelIcon(key string) string {
	switch strings.ToLower(key) {
	case "whatsapp":
		return i.WhatsApp
	case "telegram":
		return i.Telegram
	case "discord":
		return i.Discord
	case "slack":
		return i.Slack
	case "signal":
		return i.Signal
	case "imessage":
		return i.IMessage
	case "googlechat":
		return i.GoogleChat
	case "nostr":
		return i.Nostr
	default:
		return i.Extension
	}
}

// StatusIcon returns the icon for a boolean status
func (i IconSet) StatusIcon(ok bool) string {
	if ok {
		return i.Check
	}
	return i.Cross
}
