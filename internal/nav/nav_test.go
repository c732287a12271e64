package nav

import (
	"reflect"
	"testing"
)

func TestExpandSwitchesChannelAndResetsTab(t *testing.T) {
	s := New()

	s.Expand("whatsapp")
	if !s.IsExpanded("whatsapp") {
		t.Fatal("whatsapp should be expanded")
	}

	s.ChangeTab(TabActions)
	s.Expand("telegram")

	if !s.IsExpanded("telegram") {
		t.Fatal("telegram should be expanded")
	}
	if s.IsExpanded("whatsapp") {
		t.Fatal("at most one channel may be expanded")
	}
	// Tab state is discarded across switches, not preserved.
	if s.ActiveTab != TabStatus {
		t.Errorf("ActiveTab = %v, want %v", s.ActiveTab, TabStatus)
	}
}

func TestExpandSameChannelIsIdempotent(t *testing.T) {
	s := New()
	s.Expand("whatsapp")
	s.ChangeTab(TabAccounts)

	// A row click on the already-expanded row stays expanded, tab unchanged.
	s.Expand("whatsapp")

	if !s.IsExpanded("whatsapp") {
		t.Fatal("whatsapp should stay expanded")
	}
	if s.ActiveTab != TabAccounts {
		t.Errorf("ActiveTab = %v, want %v", s.ActiveTab, TabAccounts)
	}
}

func TestCollapse(t *testing.T) {
	t.Run("collapses an expanded channel", func(t *testing.T) {
		s := New()
		s.Expand("signal")
		s.Collapse()
		if !s.IsCollapsed() {
			t.Error("expected collapsed state")
		}
	})

	t.Run("no-op when already collapsed", func(t *testing.T) {
		s := New()
		s.Collapse()
		if !s.IsCollapsed() {
			t.Error("collapse on collapsed state must stay collapsed")
		}
	})
}

func TestChangeTabRequiresExpansion(t *testing.T) {
	s := New()
	s.ChangeTab(TabActions)
	if s.ActiveTab != TabStatus {
		t.Error("tab change while collapsed should not apply")
	}
}

func TestMoveFocusClamping(t *testing.T) {
	cases := []struct {
		name         string
		start, delta int
		count        int
		want         int
	}{
		{"down within range", 0, 1, 5, 1},
		{"up clamped at first", 0, -1, 5, 0},
		{"down clamped at last", 4, 1, 5, 4},
		{"big jump clamps", 2, 100, 5, 4},
		{"empty list pins to zero", 3, 1, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.Focused = tc.start
			s.MoveFocus(tc.delta, tc.count)
			if s.Focused != tc.want {
				t.Errorf("Focused = %d, want %d", s.Focused, tc.want)
			}
		})
	}
}

func TestFocusJumps(t *testing.T) {
	s := New()
	s.Focused = 3

	s.FocusFirst()
	if s.Focused != 0 {
		t.Errorf("FocusFirst: Focused = %d, want 0", s.Focused)
	}

	s.FocusLast(8)
	if s.Focused != 7 {
		t.Errorf("FocusLast: Focused = %d, want 7", s.Focused)
	}
}

func TestClampFocusAfterListShrinks(t *testing.T) {
	s := New()
	s.Focused = 6
	s.ClampFocus(3)
	if s.Focused != 2 {
		t.Errorf("Focused = %d, want 2", s.Focused)
	}
}

func TestCycleTab(t *testing.T) {
	visible := []Tab{TabStatus, TabConfig, TabActions}

	t.Run("forward wraps", func(t *testing.T) {
		s := New()
		s.Expand("nostr")
		got := []Tab{s.ActiveTab}
		for i := 0; i < 3; i++ {
			s.CycleTab(visible, 1)
			got = append(got, s.ActiveTab)
		}
		want := []Tab{TabStatus, TabConfig, TabActions, TabStatus}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("backward wraps", func(t *testing.T) {
		s := New()
		s.Expand("nostr")
		s.CycleTab(visible, -1)
		if s.ActiveTab != TabActions {
			t.Errorf("ActiveTab = %v, want %v", s.ActiveTab, TabActions)
		}
	})

	t.Run("ignored while collapsed", func(t *testing.T) {
		s := New()
		s.CycleTab(visible, 1)
		if s.ActiveTab != TabStatus {
			t.Error("cycle while collapsed should not apply")
		}
	})

	t.Run("active tab hidden from set restarts at first offset", func(t *testing.T) {
		s := New()
		s.Expand("nostr")
		s.ActiveTab = TabAccounts // e.g. the account list shrank below two
		s.CycleTab(visible, 1)
		if s.ActiveTab != TabConfig {
			t.Errorf("ActiveTab = %v, want %v", s.ActiveTab, TabConfig)
		}
	})
}
