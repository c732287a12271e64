// Package nav holds the dashboard's navigation state: which single channel
// is expanded, which detail tab is active, and which row holds keyboard
// focus. Transitions are pure state changes; turning the focused index into
// an actual focus effect is the host's job.
package nav

// Tab is one of the four detail sub-views of an expanded channel.
type Tab string

const (
	TabStatus   Tab = "status"
	TabAccounts Tab = "accounts"
	TabConfig   Tab = "config"
	TabActions  Tab = "actions"
)

// Title returns the display title of the tab.
func (t Tab) Title() string {
	switch t {
	case TabStatus:
		return "Status"
	case TabAccounts:
		return "Accounts"
	case TabConfig:
		return "Config"
	case TabActions:
		return "Actions"
	default:
		return string(t)
	}
}

// State tracks the expanded channel, its active tab, and the focused row.
// At most one channel is expanded at a time; ActiveTab is meaningful only
// while a channel is expanded.
type State struct {
	// Expanded is the expanded channel key, empty when collapsed.
	Expanded string
	// ActiveTab is the detail tab shown for the expanded channel.
	ActiveTab Tab
	// Focused is the index of the focused list row.
	Focused int
}

// New returns the initial, collapsed state.
func New() State {
	return State{ActiveTab: TabStatus}
}

// IsCollapsed reports whether no channel is expanded.
func (s State) IsCollapsed() bool { return s.Expanded == "" }

// IsExpanded reports whether the given channel is the expanded one.
func (s State) IsExpanded(id string) bool { return s.Expanded != "" && s.Expanded == id }

// Expand opens a channel's detail view. Expanding a different channel while
// one is open implicitly collapses the previous one and resets the tab to
// status; expanding the already-open channel is a no-op (the tab survives).
func (s *State) Expand(id string) {
	if id == "" || s.Expanded == id {
		return
	}
	s.Expanded = id
	s.ActiveTab = TabStatus
}

// Collapse closes the detail view. No-op when already collapsed.
func (s *State) Collapse() {
	s.Expanded = ""
	s.ActiveTab = TabStatus
}

// ChangeTab switches the active tab. Only meaningful while expanded; the
// caller's tab bar is responsible for offering valid tabs only.
func (s *State) ChangeTab(t Tab) {
	if s.Expanded == "" {
		return
	}
	s.ActiveTab = t
}

// CycleTab moves the active tab by delta through the given visible tab set,
// wrapping at the ends. The visible set comes from the detail composer so
// hidden tabs are never reachable.
func (s *State) CycleTab(visible []Tab, delta int) {
	if s.Expanded == "" || len(visible) == 0 {
		return
	}
	cur := 0
	for i, t := range visible {
		if t == s.ActiveTab {
			cur = i
			break
		}
	}
	next := (cur + delta) % len(visible)
	if next < 0 {
		next += len(visible)
	}
	s.ActiveTab = visible[next]
}

// MoveFocus moves the focused row by delta, clamped to [0, count-1].
// There is no wraparound.
func (s *State) MoveFocus(delta, count int) {
	if count <= 0 {
		s.Focused = 0
		return
	}
	s.Focused += delta
	s.clamp(count)
}

// FocusFirst jumps focus to the first row.
func (s *State) FocusFirst() { s.Focused = 0 }

// FocusLast jumps focus to the last row.
func (s *State) FocusLast(count int) {
	if count <= 0 {
		s.Focused = 0
		return
	}
	s.Focused = count - 1
}

// ClampFocus re-clamps the focused index after the list changes size.
func (s *State) ClampFocus(count int) {
	if count <= 0 {
		s.Focused = 0
		return
	}
	s.clamp(count)
}

func (s *State) clamp(count int) {
	if s.Focused < 0 {
		s.Focused = 0
	}
	if s.Focused > count-1 {
		s.Focused = count - 1
	}
}
