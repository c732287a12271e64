// Package detail composes the content of an expanded channel's detail view:
// the visible tab set, the per-kind status fields, the account rows, and
// the available actions. It decides what to show and which actions exist;
// executing an action is the gateway client's job.
package detail

import (
	"bridgemon/internal/channel"
	"bridgemon/internal/config"
	"bridgemon/internal/nav"
	"bridgemon/internal/snapshot"
)

// Tone classifies a field value for rendering.
type Tone int

const (
	ToneNormal Tone = iota
	ToneGood
	ToneBad
	ToneWarn
	ToneMuted
)

// Field is one label/value pair of a detail view. Both the TUI and the
// plain-text CLI render from the same fields.
type Field struct {
	Label string
	Value string
	Tone  Tone
}

// Placeholder texts for empty detail content.
const (
	// NoDataNote renders when the expanded channel is missing from the
	// latest snapshot. Navigation and snapshot refresh independently, so
	// this is a normal transient, not an error.
	NoDataNote = "no data for this channel"
	// EmptyAccountsNote renders instead of an empty account list.
	EmptyAccountsNote = "no accounts configured"
	// NoActionsNote renders for channels without actions.
	NoActionsNote = "no actions available for this channel"
)

// VisibleTabs returns the tab set for a channel. The accounts tab is hidden
// for channels with fewer than two accounts: the status tab already shows
// everything a one-account listing would.
func VisibleTabs(accountCount int) []nav.Tab {
	if accountCount < 2 {
		return []nav.Tab{nav.TabStatus, nav.TabConfig, nav.TabActions}
	}
	return []nav.Tab{nav.TabStatus, nav.TabAccounts, nav.TabConfig, nav.TabActions}
}

// ErrorCallout returns the channel-reported error verbatim, empty when the
// channel has none (or is missing entirely).
func ErrorCallout(st snapshot.Status) string {
	if st == nil {
		return ""
	}
	return st.Base().LastError.String()
}

// Label origins reported by ResolveLabel.
const (
	LabelFromConfig    = "config override"
	LabelFromGateway   = "gateway metadata"
	LabelFromExtension = "extension declaration"
	LabelFromKey       = "channel key"
)

// ResolveLabel picks the channel's display label and reports its origin.
// Host config overrides win, then labels carried by the gateway snapshot,
// then extension declarations, then the raw key.
func ResolveLabel(cfg *config.Config, exts []config.Extension, snap *snapshot.Snapshot, key string) (string, string) {
	if cfg != nil {
		if label := cfg.Label(key); label != "" {
			return label, LabelFromConfig
		}
	}
	if label := channel.ResolveLabel(snap, key); label != key {
		return label, LabelFromGateway
	}
	if label := config.ExtensionLabel(exts, key); label != "" {
		return label, LabelFromExtension
	}
	return key, LabelFromKey
}

// ConfigFields summarizes the channel's configuration state. Editing
// happens in the gateway's own config, so this tab is informational.
// labelFrom is one of the Label origin constants; the label rows are
// omitted when the channel has no label beyond its key.
func ConfigFields(key string, st snapshot.Status, enabled bool, label, labelFrom string) []Field {
	kind := snapshot.KindOf(key)
	fields := []Field{
		{Label: "Channel", Value: key},
		{Label: "Kind", Value: kind.String()},
	}
	if label != "" && labelFrom != LabelFromKey {
		fields = append(fields,
			Field{Label: "Label", Value: label},
			Field{Label: "Label from", Value: labelFrom, Tone: ToneMuted})
	}
	if enabled {
		fields = append(fields, Field{Label: "Enabled", Value: "Yes", Tone: ToneGood})
	} else {
		fields = append(fields, Field{Label: "Enabled", Value: "No", Tone: ToneMuted})
	}
	fields = append(fields, flagField("Configured", baseOf(st).Configured))
	fields = append(fields, Field{
		Label: "Note",
		Value: "channel settings are managed in the gateway configuration",
		Tone:  ToneMuted,
	})
	return fields
}

func baseOf(st snapshot.Status) snapshot.Common {
	if st == nil {
		return snapshot.Common{}
	}
	return st.Base()
}
