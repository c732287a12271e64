package detail

import (
	"time"

	"bridgemon/internal/channel"
	"bridgemon/internal/snapshot"
)

// AccountRow is one account's derived display row for the accounts tab.
type AccountRow struct {
	ID        string
	Name      string
	Running   channel.Liveness
	Connected channel.Liveness
	// LastInbound is zero when the account never received a message.
	LastInbound time.Time
	Err         string
}

// DisplayName returns the account's name, falling back to its id.
func (r AccountRow) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// AccountRows classifies every account of a channel for display. An empty
// result means the host should render EmptyAccountsNote, not an empty list.
func AccountRows(accounts []snapshot.Account, now time.Time) []AccountRow {
	rows := make([]AccountRow, 0, len(accounts))
	for _, a := range accounts {
		row := AccountRow{
			ID:        a.ID.String(),
			Name:      a.Name.String(),
			Running:   channel.RunningState(a, now),
			Connected: channel.ConnectedState(a, now),
			Err:       a.LastError.String(),
		}
		if ts, ok := a.LastInbound.Time(); ok {
			row.LastInbound = ts
		}
		rows = append(rows, row)
	}
	return rows
}
