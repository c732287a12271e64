// Package snapshot models the gateway's polled status payload.
// The wire payload is decoded once, at this boundary, into fully typed
// structures; downstream code never re-probes raw JSON. Absent and
// wrong-typed fields decode to explicit "unknown" values so the rest of
// the program can distinguish "the gateway said false" from "the gateway
// said nothing".
package snapshot

import (
	"encoding/json"
	"time"
)

// Kind identifies a channel integration type.
type Kind string

const (
	KindWhatsApp   Kind = "whatsapp"
	KindTelegram   Kind = "telegram"
	KindDiscord    Kind = "discord"
	KindGoogleChat Kind = "googlechat"
	KindSlack      Kind = "slack"
	KindSignal     Kind = "signal"
	KindIMessage   Kind = "imessage"
	KindNostr      Kind = "nostr"
	// KindGeneric covers extension channels and anything the gateway
	// reports that this build does not know by name.
	KindGeneric Kind = "generic"
)

// builtinKinds maps well-known channel keys to their kind. Extension
// channels use arbitrary keys and fall through to KindGeneric.
var builtinKinds = map[string]Kind{
	"whatsapp":   KindWhatsApp,
	"telegram":   KindTelegram,
	"discord":    KindDiscord,
	"googlechat": KindGoogleChat,
	"slack":      KindSlack,
	"signal":     KindSignal,
	"imessage":   KindIMessage,
	"nostr":      KindNostr,
}

// KindOf returns the kind for a channel key, KindGeneric for unknown keys.
func KindOf(key string) Kind {
	if k, ok := builtinKinds[key]; ok {
		return k
	}
	return KindGeneric
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// OptBool is a tri-state boolean wire field: absent, false, or true.
// Absence is meaningful and renders as "n/a", never as "No".
type OptBool struct {
	Value   bool
	Present bool
}

// Bool returns a present OptBool carrying v.
func Bool(v bool) OptBool {
	return OptBool{Value: v, Present: true}
}

// IsTrue reports whether the field is present and true.
func (b OptBool) IsTrue() bool { return b.Present && b.Value }

// IsFalse reports whether the field is present and explicitly false.
func (b OptBool) IsFalse() bool { return b.Present && !b.Value }

// UnmarshalJSON decodes a boolean; null, absent, or wrong-typed values
// all decode to the absent state rather than failing the snapshot.
func (b *OptBool) UnmarshalJSON(data []byte) error {
	// json.Unmarshal leaves a bool untouched on null, which would read as
	// an explicit false here.
	if string(data) == "null" {
		*b = OptBool{}
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		*b = OptBool{}
		return nil
	}
	*b = OptBool{Value: v, Present: true}
	return nil
}

// MarshalJSON encodes the absent state as null.
func (b OptBool) MarshalJSON() ([]byte, error) {
	if !b.Present {
		return []byte("null"), nil
	}
	return json.Marshal(b.Value)
}

// Text is a string wire field that decodes wrong-typed values to "".
type Text string

// UnmarshalJSON decodes a string; anything else becomes the empty string.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

// String returns the field as a plain string.
func (t Text) String() string { return string(t) }

// MilliTime is a millisecond epoch timestamp; zero or negative means absent.
type MilliTime int64

// UnmarshalJSON decodes an integer timestamp; null and junk decode to zero.
func (m *MilliTime) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		*m = 0
		return nil
	}
	*m = MilliTime(v)
	return nil
}

// Time returns the timestamp and whether it is present.
func (m MilliTime) Time() (time.Time, bool) {
	if m <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(m)), true
}

// MilliDur is a duration in milliseconds, tolerant of junk on the wire.
type MilliDur int64

// UnmarshalJSON decodes an integer duration; null and junk decode to zero.
func (d *MilliDur) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		*d = 0
		return nil
	}
	*d = MilliDur(v)
	return nil
}

// Duration converts the field to a time.Duration.
func (d MilliDur) Duration() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// Common holds the three universal channel flags plus the channel-reported
// error. Every status variant embeds it.
type Common struct {
	Configured OptBool `json:"configured"`
	Running    OptBool `json:"running"`
	Connected  OptBool `json:"connected"`
	LastError  Text    `json:"lastError"`
}

// HasError reports whether the channel carries a non-empty error string.
func (c Common) HasError() bool { return c.LastError != "" }

// Status is the typed per-channel status payload. One variant exists per
// protocol kind; unknown kinds decode to *Generic.
type Status interface {
	Kind() Kind
	Base() Common
}

// ProbeResult is the outcome of the most recent connectivity probe for
// channels that support probing.
type ProbeResult struct {
	OK        OptBool   `json:"ok"`
	Detail    Text      `json:"detail"`
	CheckedAt MilliTime `json:"checkedAt"`
}

// WhatsApp status carries the device-link state and, while a login is
// pending, the current QR payload.
type WhatsApp struct {
	Common
	Linked  OptBool  `json:"linked"`
	AuthAge MilliDur `json:"authAgeMs"`
	QR      Text     `json:"qr"`
}

func (*WhatsApp) Kind() Kind     { return KindWhatsApp }
func (s *WhatsApp) Base() Common { return s.Common }

// Telegram status.
type Telegram struct {
	Common
	Mode  Text         `json:"mode"`
	Probe *ProbeResult `json:"probe"`
}

func (*Telegram) Kind() Kind     { return KindTelegram }
func (s *Telegram) Base() Common { return s.Common }

// Discord status.
type Discord struct {
	Common
	Mode  Text         `json:"mode"`
	Probe *ProbeResult `json:"probe"`
}

func (*Discord) Kind() Kind     { return KindDiscord }
func (s *Discord) Base() Common { return s.Common }

// Slack status.
type Slack struct {
	Common
	Mode  Text         `json:"mode"`
	Probe *ProbeResult `json:"probe"`
}

func (*Slack) Kind() Kind     { return KindSlack }
func (s *Slack) Base() Common { return s.Common }

// Signal status.
type Signal struct {
	Common
	Probe *ProbeResult `json:"probe"`
}

func (*Signal) Kind() Kind     { return KindSignal }
func (s *Signal) Base() Common { return s.Common }

// GoogleChat status.
type GoogleChat struct {
	Common
	Probe *ProbeResult `json:"probe"`
}

func (*GoogleChat) Kind() Kind     { return KindGoogleChat }
func (s *GoogleChat) Base() Common { return s.Common }

// IMessage status has no protocol-specific fields beyond the common set.
type IMessage struct {
	Common
}

func (*IMessage) Kind() Kind     { return KindIMessage }
func (s *IMessage) Base() Common { return s.Common }

// Nostr status.
type Nostr struct {
	Common
	Relays int `json:"relays"`
}

func (*Nostr) Kind() Kind     { return KindNostr }
func (s *Nostr) Base() Common { return s.Common }

// Generic is the catch-all status for extension channels and malformed
// records. Key preserves the wire channel key.
type Generic struct {
	Common
	Key string `json:"-"`
}

func (*Generic) Kind() Kind     { return KindGeneric }
func (s *Generic) Base() Common { return s.Common }

// Account is one logical connection/identity within a channel.
type Account struct {
	ID          Text      `json:"accountId"`
	Name        Text      `json:"name"`
	Configured  OptBool   `json:"configured"`
	Running     OptBool   `json:"running"`
	Connected   OptBool   `json:"connected"`
	LastInbound MilliTime `json:"lastInboundAt"`
	LastError   Text      `json:"lastError"`
}

// ChannelMeta is an ordering and display-name hint for one channel.
type ChannelMeta struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Snapshot is the decoded, immutable status payload for one poll cycle.
// It is replaced wholesale every refresh; nothing mutates it in place.
type Snapshot struct {
	Channels map[string]Status
	Accounts map[string][]Account
	Meta     []ChannelMeta
	Order    []string
	Labels   map[string]string

	// Fetch metadata, carried for display only.
	FetchedAt  time.Time
	FetchError string
}

// Channel returns the typed status for a channel key. Safe on a nil
// snapshot: navigation state and snapshot refresh independently, so the
// expanded channel may not exist in the latest payload.
func (s *Snapshot) Channel(key string) (Status, bool) {
	if s == nil {
		return nil, false
	}
	st, ok := s.Channels[key]
	return st, ok
}

// ChannelAccounts returns the accounts for a channel key, nil-safe.
func (s *Snapshot) ChannelAccounts(key string) []Account {
	if s == nil {
		return nil
	}
	return s.Accounts[key]
}
