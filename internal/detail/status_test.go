package detail

import (
	"testing"
	"time"

	"bridgemon/internal/snapshot"
)

func fieldValue(fields []Field, label string) (string, bool) {
	for _, f := range fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

func TestStatusFieldsWhatsApp(t *testing.T) {
	st := &snapshot.WhatsApp{
		Common: snapshot.Common{
			Configured: snapshot.Bool(true),
			Running:    snapshot.Bool(true),
			Connected:  snapshot.Bool(true),
		},
		Linked:  snapshot.Bool(true),
		AuthAge: snapshot.MilliDur(2 * time.Hour / time.Millisecond),
	}

	fields := StatusFields(st, nil, time.Now())

	if v, _ := fieldValue(fields, "Linked"); v != "Yes" {
		t.Errorf("Linked = %q, want Yes", v)
	}
	if v, _ := fieldValue(fields, "Auth age"); v != "2h" {
		t.Errorf("Auth age = %q, want 2h", v)
	}
	if _, ok := fieldValue(fields, "Last error"); ok {
		t.Error("no error callout expected")
	}
}

func TestStatusFieldsProbeKinds(t *testing.T) {
	now := time.Now()

	t.Run("failed probe with detail", func(t *testing.T) {
		st := &snapshot.Telegram{
			Mode:  "polling",
			Probe: &snapshot.ProbeResult{OK: snapshot.Bool(false), Detail: "401 unauthorized"},
		}
		fields := StatusFields(st, nil, now)
		if v, _ := fieldValue(fields, "Mode"); v != "polling" {
			t.Errorf("Mode = %q", v)
		}
		if v, _ := fieldValue(fields, "Last probe"); v != "failed: 401 unauthorized" {
			t.Errorf("Last probe = %q", v)
		}
	})

	t.Run("successful probe with age", func(t *testing.T) {
		st := &snapshot.Discord{
			Probe: &snapshot.ProbeResult{
				OK:        snapshot.Bool(true),
				CheckedAt: snapshot.MilliTime(now.Add(-3 * time.Minute).UnixMilli()),
			},
		}
		fields := StatusFields(st, nil, now)
		if v, _ := fieldValue(fields, "Last probe"); v != "ok (3m ago)" {
			t.Errorf("Last probe = %q", v)
		}
	})

	t.Run("no probe yet", func(t *testing.T) {
		fields := StatusFields(&snapshot.Signal{}, nil, now)
		if v, _ := fieldValue(fields, "Last probe"); v != "never" {
			t.Errorf("Last probe = %q, want never", v)
		}
	})
}

func TestStatusFieldsGeneric(t *testing.T) {
	now := time.Now()

	t.Run("absent flags render n/a not No", func(t *testing.T) {
		st := &snapshot.Generic{
			Common: snapshot.Common{Configured: snapshot.Bool(true)},
			Key:    "matrix",
		}
		fields := StatusFields(st, nil, now)
		if v, _ := fieldValue(fields, "Configured"); v != "Yes" {
			t.Errorf("Configured = %q", v)
		}
		if v, _ := fieldValue(fields, "Running"); v != "n/a" {
			t.Errorf("Running = %q, want n/a", v)
		}
		if v, _ := fieldValue(fields, "Connected"); v != "n/a" {
			t.Errorf("Connected = %q, want n/a", v)
		}
	})

	t.Run("last message from first account", func(t *testing.T) {
		accounts := []snapshot.Account{
			{LastInbound: snapshot.MilliTime(now.Add(-7 * time.Minute).UnixMilli())},
		}
		fields := StatusFields(&snapshot.Generic{Key: "matrix"}, accounts, now)
		if v, _ := fieldValue(fields, "Last message"); v != "7m ago" {
			t.Errorf("Last message = %q", v)
		}
	})

	t.Run("no accounts means n/a", func(t *testing.T) {
		fields := StatusFields(&snapshot.Generic{Key: "matrix"}, nil, now)
		if v, _ := fieldValue(fields, "Last message"); v != "n/a" {
			t.Errorf("Last message = %q, want n/a", v)
		}
	})
}

func TestStatusFieldsErrorCallout(t *testing.T) {
	st := &snapshot.Nostr{
		Common: snapshot.Common{Running: snapshot.Bool(true), LastError: "relay pool drained"},
		Relays: 3,
	}
	fields := StatusFields(st, nil, time.Now())

	if v, _ := fieldValue(fields, "Relays"); v != "3" {
		t.Errorf("Relays = %q", v)
	}
	v, ok := fieldValue(fields, "Last error")
	if !ok {
		t.Fatal("expected error callout")
	}
	if v != "relay pool drained" {
		t.Errorf("Last error = %q, want verbatim message", v)
	}
	// The callout trails everything else.
	if fields[len(fields)-1].Label != "Last error" {
		t.Error("error callout should be the trailing field")
	}
}

func TestStatusFieldsNilStatus(t *testing.T) {
	if fields := StatusFields(nil, nil, time.Now()); fields != nil {
		t.Errorf("nil status should yield nil fields, got %v", fields)
	}
}
