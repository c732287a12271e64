package snapshot

import (
	"encoding/json"
	"fmt"
	"time"
)

// wireSnapshot mirrors the gateway's JSON shape before typing.
type wireSnapshot struct {
	Channels        map[string]json.RawMessage `json:"channels"`
	ChannelAccounts map[string]json.RawMessage `json:"channelAccounts"`
	ChannelMeta     []ChannelMeta              `json:"channelMeta"`
	ChannelOrder    []string                   `json:"channelOrder"`
	ChannelLabels   map[string]string          `json:"channelLabels"`
}

// Decode parses a raw gateway payload into a typed Snapshot. Only a payload
// that is not a JSON object at the top level fails; individual malformed
// channel records and account lists degrade to their unknown/empty defaults.
func Decode(data []byte, fetchedAt time.Time) (*Snapshot, error) {
	var w wireSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("snapshot: decoding payload: %w", err)
	}

	snap := &Snapshot{
		Channels:  make(map[string]Status, len(w.Channels)),
		Accounts:  make(map[string][]Account, len(w.ChannelAccounts)),
		Meta:      w.ChannelMeta,
		Order:     w.ChannelOrder,
		Labels:    w.ChannelLabels,
		FetchedAt: fetchedAt,
	}

	for key, raw := range w.Channels {
		snap.Channels[key] = decodeStatus(key, raw)
	}

	for key, raw := range w.ChannelAccounts {
		var accounts []Account
		if err := json.Unmarshal(raw, &accounts); err != nil {
			// Malformed account list degrades to no accounts.
			continue
		}
		snap.Accounts[key] = accounts
	}

	return snap, nil
}

// decodeStatus types one channel's raw status record. Field-level junk is
// absorbed by the lenient scalar types; a record that is not an object at
// all degrades to a Generic with every field unknown.
func decodeStatus(key string, raw json.RawMessage) Status {
	var st Status
	switch KindOf(key) {
	case KindWhatsApp:
		st = &WhatsApp{}
	case KindTelegram:
		st = &Telegram{}
	case KindDiscord:
		st = &Discord{}
	case KindSlack:
		st = &Slack{}
	case KindSignal:
		st = &Signal{}
	case KindGoogleChat:
		st = &GoogleChat{}
	case KindIMessage:
		st = &IMessage{}
	case KindNostr:
		st = &Nostr{}
	default:
		st = &Generic{Key: key}
	}

	if err := json.Unmarshal(raw, st); err != nil {
		return &Generic{Key: key}
	}
	return st
}
