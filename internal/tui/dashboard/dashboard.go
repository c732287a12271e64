// Package dashboard provides the live channel status dashboard: a compact
// list of every messaging channel with one expandable detail view.
package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bridgemon/internal/channel"
	"bridgemon/internal/config"
	"bridgemon/internal/detail"
	"bridgemon/internal/nav"
	"bridgemon/internal/snapshot"
	"bridgemon/internal/tui/icons"
	"bridgemon/internal/tui/theme"
)

// Gateway is the slice of the gateway client the dashboard needs. Tests
// substitute a fake.
type Gateway interface {
	FetchSnapshot(ctx context.Context) (*snapshot.Snapshot, error)
	Probe(ctx context.Context, channelKey string) error
	StartQR(ctx context.Context) error
	Logout(ctx context.Context) error
}

// TickMsg drives relative-time and staleness updates.
type TickMsg time.Time

// RefreshMsg triggers a snapshot poll.
type RefreshMsg struct{}

// SnapshotMsg carries the result of a snapshot poll.
type SnapshotMsg struct {
	Snap *snapshot.Snapshot
	Err  error
}

// ActionResultMsg carries the result of a channel action.
type ActionResultMsg struct {
	Channel string
	Action  string
	Err     error
}

// ConfigReloadedMsg is sent when the config or extensions file changed on
// disk and was reloaded.
type ConfigReloadedMsg struct {
	Cfg  *config.Config
	Exts []config.Extension
}

// KeyMap defines dashboard keybindings
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Home    key.Binding
	End     key.Binding
	Expand  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Probe   key.Binding
	Login   key.Binding
	Logout  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var dashKeys = KeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Home:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Expand:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
	NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Probe:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "probe")),
	Login:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "link device")),
	Logout:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "log out")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "collapse/quit")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the channel dashboard model
type Model struct {
	client Gateway
	cfg    *config.Config
	exts   []config.Extension

	snap       *snapshot.Snapshot
	fetchErr   error
	lastFetch  time.Time
	items      []channel.ListItem
	nav        nav.State
	busy       map[string]bool
	actionNote string
	width      int
	height     int
	quitting   bool
	refreshIvl time.Duration

	theme  theme.Theme
	styles theme.Styles
	icons  icons.IconSet
}

// New creates a dashboard model.
func New(client Gateway, cfg *config.Config, exts []config.Extension) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	t := theme.FromName(cfg.UI.Theme)
	ic := icons.FromName(cfg.UI.Icons)

	m := Model{
		client:     client,
		cfg:        cfg,
		exts:       exts,
		nav:        nav.New(),
		busy:       make(map[string]bool),
		width:      80,
		height:     24,
		refreshIvl: cfg.RefreshInterval(),
		theme:      t,
		styles:     theme.NewStyles(t),
		icons:      ic,
	}
	m.rebuild()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchSnapshot(),
		m.scheduleRefresh(),
		m.tick(),
	)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refreshIvl, func(time.Time) tea.Msg {
		return RefreshMsg{}
	})
}

func (m Model) fetchSnapshot() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		snap, err := client.FetchSnapshot(context.Background())
		return SnapshotMsg{Snap: snap, Err: err}
	}
}

func (m Model) runAction(channelKey, actionID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var err error
		switch actionID {
		case detail.ActionProbe:
			err = client.Probe(context.Background(), channelKey)
		case detail.ActionQRLogin:
			err = client.StartQR(context.Background())
		case detail.ActionLogout:
			err = client.Logout(context.Background())
		}
		return ActionResultMsg{Channel: channelKey, Action: actionID, Err: err}
	}
}

// rebuild recomputes the display list from the snapshot and config. Rows
// are ephemeral; nothing but the channel key survives a rebuild.
func (m *Model) rebuild() {
	enabled := func(key string) bool { return m.cfg.Enabled(key, m.exts) }

	order := config.MergeOrder(channel.ResolveOrder(m.snap), m.exts)
	keys := channel.DisplayOrder(order, enabled)

	items := make([]channel.ListItem, 0, len(keys))
	for _, key := range keys {
		item := channel.Summarize(key, m.snap, nil)
		// Host label overrides beat whatever the snapshot carries.
		item.Label, _ = detail.ResolveLabel(m.cfg, m.exts, m.snap, key)
		items = append(items, item)
	}
	m.items = items
	m.nav.ClampFocus(len(items))
}

func (m Model) focusedItem() (channel.ListItem, bool) {
	if len(m.items) == 0 || m.nav.Focused >= len(m.items) {
		return channel.ListItem{}, false
	}
	return m.items[m.nav.Focused], true
}

func (m Model) expandedItem() (channel.ListItem, bool) {
	for _, it := range m.items {
		if m.nav.IsExpanded(it.ID) {
			return it, true
		}
	}
	return channel.ListItem{}, false
}

func (m Model) expandedStatus() snapshot.Status {
	if m.nav.IsCollapsed() {
		return nil
	}
	st, _ := m.snap.Channel(m.nav.Expanded)
	return st
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m, m.tick()

	case RefreshMsg:
		return m, tea.Batch(m.fetchSnapshot(), m.scheduleRefresh())

	case SnapshotMsg:
		if msg.Err != nil {
			// Keep showing the last good snapshot, flagged stale.
			m.fetchErr = msg.Err
			return m, nil
		}
		m.fetchErr = nil
		m.snap = msg.Snap
		m.lastFetch = time.Now()
		m.rebuild()
		return m, nil

	case ActionResultMsg:
		delete(m.busy, msg.Channel)
		if msg.Err != nil {
			m.actionNote = msg.Action + " failed: " + msg.Err.Error()
			return m, nil
		}
		m.actionNote = ""
		// The action's effect lands in the next snapshot.
		return m, m.fetchSnapshot()

	case ConfigReloadedMsg:
		if msg.Cfg != nil {
			m.cfg = msg.Cfg
			m.refreshIvl = msg.Cfg.RefreshInterval()
			m.theme = theme.FromName(msg.Cfg.UI.Theme)
			m.styles = theme.NewStyles(m.theme)
			m.icons = icons.FromName(msg.Cfg.UI.Icons)
		}
		m.exts = msg.Exts
		m.rebuild()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, dashKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, dashKeys.Back):
		if !m.nav.IsCollapsed() {
			m.nav.Collapse()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, dashKeys.Up):
		m.nav.MoveFocus(-1, len(m.items))
		return m, nil

	case key.Matches(msg, dashKeys.Down):
		m.nav.MoveFocus(1, len(m.items))
		return m, nil

	case key.Matches(msg, dashKeys.Home):
		m.nav.FocusFirst()
		return m, nil

	case key.Matches(msg, dashKeys.End):
		m.nav.FocusLast(len(m.items))
		return m, nil

	case key.Matches(msg, dashKeys.Expand):
		// Idempotent: re-activating the expanded row keeps it expanded on
		// the same tab. Esc is the collapse affordance.
		if it, ok := m.focusedItem(); ok {
			m.nav.Expand(it.ID)
		}
		return m, nil

	case key.Matches(msg, dashKeys.NextTab):
		if it, ok := m.expandedItem(); ok {
			m.nav.CycleTab(detail.VisibleTabs(it.AccountCount), 1)
		}
		return m, nil

	case key.Matches(msg, dashKeys.PrevTab):
		if it, ok := m.expandedItem(); ok {
			m.nav.CycleTab(detail.VisibleTabs(it.AccountCount), -1)
		}
		return m, nil

	case key.Matches(msg, dashKeys.Refresh):
		return m, m.fetchSnapshot()

	case key.Matches(msg, dashKeys.Probe):
		return m.startAction(detail.ActionProbe)

	case key.Matches(msg, dashKeys.Login):
		return m.startAction(detail.ActionQRLogin)

	case key.Matches(msg, dashKeys.Logout):
		return m.startAction(detail.ActionLogout)
	}

	return m, nil
}

// startAction kicks off an action for the expanded channel if the composer
// offers it and nothing is already in flight there.
func (m Model) startAction(actionID string) (tea.Model, tea.Cmd) {
	it, ok := m.expandedItem()
	if !ok {
		return m, nil
	}
	st := m.expandedStatus()
	for _, a := range detail.Actions(st, m.busy[it.ID]) {
		if a.ID == actionID && a.Enabled {
			m.busy[it.ID] = true
			m.actionNote = ""
			return m, m.runAction(it.ID, actionID)
		}
	}
	return m, nil
}
