package channel

import (
	"fmt"
	"time"

	"bridgemon/internal/snapshot"
)

// StatusClass is the single classification applied to a compact list row.
type StatusClass string

const (
	ClassError        StatusClass = "error"
	ClassConnected    StatusClass = "connected"
	ClassRunning      StatusClass = "running"
	ClassConfigured   StatusClass = "configured"
	ClassUnconfigured StatusClass = "unconfigured"
)

// Summary returns the display label for the class.
func (c StatusClass) Summary() string {
	switch c {
	case ClassError:
		return "Error"
	case ClassConnected:
		return "Connected"
	case ClassRunning:
		return "Running"
	case ClassConfigured:
		return "Configured"
	default:
		return "Not configured"
	}
}

// ListItem is the derived, ephemeral row for one channel. It is recomputed
// from scratch whenever the snapshot or navigation state changes and holds
// no identity beyond the channel key.
type ListItem struct {
	ID           string
	Label        string
	Kind         snapshot.Kind
	Configured   snapshot.OptBool
	Running      snapshot.OptBool
	Connected    snapshot.OptBool
	AccountCount int
	// LastActivity is the max LastInbound across the channel's accounts;
	// zero when no account has one.
	LastActivity time.Time
	HasError     bool
}

// Class returns the row's status class. Precedence:
// error > connected > running > configured > unconfigured.
func (it ListItem) Class() StatusClass {
	switch {
	case it.HasError:
		return ClassError
	case it.Connected.IsTrue():
		return ClassConnected
	case it.Running.IsTrue():
		return ClassRunning
	case it.Configured.IsTrue():
		return ClassConfigured
	default:
		return ClassUnconfigured
	}
}

// AccountSuffix returns the account-count suffix for the row, empty when
// the channel has no accounts.
func (it ListItem) AccountSuffix() string {
	switch it.AccountCount {
	case 0:
		return ""
	case 1:
		return "1 account"
	default:
		return fmt.Sprintf("%d accounts", it.AccountCount)
	}
}

// CountFunc resolves the account count for a channel. The default counts
// the snapshot's account list; hosts may substitute their own resolver.
type CountFunc func(key string, accounts map[string][]snapshot.Account) int

// CountAccounts is the default account-count resolver.
func CountAccounts(key string, accounts map[string][]snapshot.Account) int {
	return len(accounts[key])
}

// Summarize builds the list row for one channel. A channel missing from the
// snapshot yields a row with every flag unknown; summarization never fails.
func Summarize(key string, snap *snapshot.Snapshot, count CountFunc) ListItem {
	if count == nil {
		count = CountAccounts
	}

	item := ListItem{
		ID:    key,
		Label: ResolveLabel(snap, key),
		Kind:  snapshot.KindOf(key),
	}

	if st, ok := snap.Channel(key); ok {
		c := st.Base()
		item.Configured = c.Configured
		item.Running = c.Running
		item.Connected = c.Connected
		item.HasError = c.HasError()
	}

	var accounts map[string][]snapshot.Account
	if snap != nil {
		accounts = snap.Accounts
	}
	item.AccountCount = count(key, accounts)

	for _, a := range snap.ChannelAccounts(key) {
		if ts, ok := a.LastInbound.Time(); ok && ts.After(item.LastActivity) {
			item.LastActivity = ts
		}
	}

	return item
}

// SummarizeAll derives the full display list: canonical order, enabled
// channels first, one row per channel.
func SummarizeAll(snap *snapshot.Snapshot, enabled EnabledFunc, count CountFunc) []ListItem {
	keys := DisplayOrder(ResolveOrder(snap), enabled)
	items := make([]ListItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, Summarize(key, snap, count))
	}
	return items
}
