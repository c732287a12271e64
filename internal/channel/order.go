package channel

import "bridgemon/internal/snapshot"

// DefaultOrder is the canonical channel sequence used when the gateway
// provides no ordering hints.
var DefaultOrder = []string{
	"whatsapp",
	"telegram",
	"discord",
	"googlechat",
	"slack",
	"signal",
	"imessage",
	"nostr",
}

// EnabledFunc reports whether a channel is enabled. Enablement is host
// configuration, not part of the snapshot.
type EnabledFunc func(key string) bool

// ResolveOrder computes the canonical channel order for a snapshot:
// channelMeta entry order first, then channelOrder verbatim, then the fixed
// default sequence.
func ResolveOrder(snap *snapshot.Snapshot) []string {
	if snap != nil {
		if len(snap.Meta) > 0 {
			keys := make([]string, 0, len(snap.Meta))
			for _, m := range snap.Meta {
				keys = append(keys, m.ID)
			}
			return keys
		}
		if len(snap.Order) > 0 {
			return append([]string(nil), snap.Order...)
		}
	}
	return append([]string(nil), DefaultOrder...)
}

// DisplayOrder re-sorts the canonical order for display: enabled channels
// before disabled ones, canonical index preserved within each group. A nil
// enabled func treats every channel as enabled.
func DisplayOrder(canonical []string, enabled EnabledFunc) []string {
	if enabled == nil {
		return append([]string(nil), canonical...)
	}
	out := make([]string, 0, len(canonical))
	for _, key := range canonical {
		if enabled(key) {
			out = append(out, key)
		}
	}
	for _, key := range canonical {
		if !enabled(key) {
			out = append(out, key)
		}
	}
	return out
}

// ResolveLabel resolves the human label for a channel key: channelMeta
// match first, then the labels map, then the raw key verbatim.
func ResolveLabel(snap *snapshot.Snapshot, key string) string {
	if snap != nil {
		for _, m := range snap.Meta {
			if m.ID == key && m.Label != "" {
				return m.Label
			}
		}
		if label, ok := snap.Labels[key]; ok && label != "" {
			return label
		}
	}
	return key
}
