package channel

import (
	"testing"
	"time"

	"bridgemon/internal/snapshot"
)

func accountWithInbound(at time.Time) snapshot.Account {
	return snapshot.Account{LastInbound: snapshot.MilliTime(at.UnixMilli())}
}

func TestHasRecentActivity(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		account snapshot.Account
		want    bool
	}{
		{"5 minutes ago", accountWithInbound(now.Add(-5 * time.Minute)), true},
		{"15 minutes ago", accountWithInbound(now.Add(-15 * time.Minute)), false},
		{"no inbound at all", snapshot.Account{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasRecentActivity(tc.account, now); got != tc.want {
				t.Errorf("HasRecentActivity = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRunningState(t *testing.T) {
	now := time.Now()

	t.Run("explicit running wins regardless of activity", func(t *testing.T) {
		a := accountWithInbound(now.Add(-2 * time.Hour))
		a.Running = snapshot.Bool(true)
		if got := RunningState(a, now); got != LivenessYes {
			t.Errorf("got %v, want %v", got, LivenessYes)
		}
	})

	t.Run("not running with recent traffic is active", func(t *testing.T) {
		a := accountWithInbound(now)
		a.Running = snapshot.Bool(false)
		if got := RunningState(a, now); got != LivenessActive {
			t.Errorf("got %v, want %v", got, LivenessActive)
		}
	})

	t.Run("not running and quiet is no", func(t *testing.T) {
		a := snapshot.Account{Running: snapshot.Bool(false)}
		if got := RunningState(a, now); got != LivenessNo {
			t.Errorf("got %v, want %v", got, LivenessNo)
		}
	})
}

func TestConnectedState(t *testing.T) {
	now := time.Now()

	t.Run("explicit false wins over recent activity", func(t *testing.T) {
		a := accountWithInbound(now)
		a.Connected = snapshot.Bool(false)
		if got := ConnectedState(a, now); got != LivenessNo {
			t.Errorf("got %v, want %v", got, LivenessNo)
		}
	})

	t.Run("unknown with recent traffic is active", func(t *testing.T) {
		a := accountWithInbound(now)
		if got := ConnectedState(a, now); got != LivenessActive {
			t.Errorf("got %v, want %v", got, LivenessActive)
		}
	})

	t.Run("unknown and quiet is n/a", func(t *testing.T) {
		a := snapshot.Account{}
		if got := ConnectedState(a, now); got != LivenessNA {
			t.Errorf("got %v, want %v", got, LivenessNA)
		}
	})

	t.Run("explicit true is yes", func(t *testing.T) {
		a := snapshot.Account{Connected: snapshot.Bool(true)}
		if got := ConnectedState(a, now); got != LivenessYes {
			t.Errorf("got %v, want %v", got, LivenessYes)
		}
	})
}

func TestLivenessLabels(t *testing.T) {
	cases := map[Liveness]string{
		LivenessYes:    "Yes",
		LivenessNo:     "No",
		LivenessActive: "Active",
		LivenessNA:     "n/a",
	}
	for state, want := range cases {
		if got := state.Label(); got != want {
			t.Errorf("%v.Label() = %q, want %q", state, got, want)
		}
	}
}
