// Package channel derives the list view of the dashboard from a decoded
// gateway snapshot: canonical ordering, per-channel summaries, and
// per-account liveness classification.
package channel

import (
	"time"

	"bridgemon/internal/snapshot"
)

// RecentActivityWindow is how far back an inbound message still counts as
// evidence of liveness.
const RecentActivityWindow = 10 * time.Minute

// Liveness is the derived activity state of one account flag.
type Liveness string

const (
	// LivenessYes means the flag is explicitly on.
	LivenessYes Liveness = "yes"
	// LivenessNo means the flag is explicitly off.
	LivenessNo Liveness = "no"
	// LivenessActive means the flag is unknown but recent inbound traffic
	// implies the account is alive.
	LivenessActive Liveness = "active"
	// LivenessNA means the flag is unknown and there is no recent traffic.
	LivenessNA Liveness = "n/a"
)

// Label returns the display text for the state.
func (l Liveness) Label() string {
	switch l {
	case LivenessYes:
		return "Yes"
	case LivenessNo:
		return "No"
	case LivenessActive:
		return "Active"
	default:
		return "n/a"
	}
}

// Icon returns the visual indicator for the state.
func (l Liveness) Icon() string {
	switch l {
	case LivenessYes:
		return "●" // filled circle
	case LivenessActive:
		return "◐" // half circle
	case LivenessNo:
		return "○" // hollow circle
	default:
		return "·" // middle dot
	}
}

// HasRecentActivity reports whether the account received an inbound message
// inside the activity window, measured against now.
func HasRecentActivity(a snapshot.Account, now time.Time) bool {
	ts, ok := a.LastInbound.Time()
	if !ok {
		return false
	}
	return now.Sub(ts) < RecentActivityWindow
}

// RunningState classifies the account's running flag. An explicit running
// flag wins over inferred activity.
func RunningState(a snapshot.Account, now time.Time) Liveness {
	if a.Running.IsTrue() {
		return LivenessYes
	}
	if HasRecentActivity(a, now) {
		return LivenessActive
	}
	return LivenessNo
}

// ConnectedState classifies the account's tri-state connected flag. An
// explicit false always wins over inference; only the unknown state falls
// back to recent-activity liveness. RunningState and ConnectedState are
// independent and may disagree.
func ConnectedState(a snapshot.Account, now time.Time) Liveness {
	if a.Connected.IsTrue() {
		return LivenessYes
	}
	if a.Connected.IsFalse() {
		return LivenessNo
	}
	if HasRecentActivity(a, now) {
		return LivenessActive
	}
	return LivenessNA
}
