package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bridgemon/internal/config"
	"bridgemon/internal/nav"
	"bridgemon/internal/snapshot"
)

type fakeGateway struct {
	snap    *snapshot.Snapshot
	err     error
	probes  []string
	qrCalls int
	logouts int
}

func (f *fakeGateway) FetchSnapshot(context.Context) (*snapshot.Snapshot, error) {
	return f.snap, f.err
}

func (f *fakeGateway) Probe(_ context.Context, key string) error {
	f.probes = append(f.probes, key)
	return nil
}

func (f *fakeGateway) StartQR(context.Context) error {
	f.qrCalls++
	return nil
}

func (f *fakeGateway) Logout(context.Context) error {
	f.logouts++
	return nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.Theme = "plain"
	cfg.UI.Icons = "ascii"
	return cfg
}

func testSnapshot(t *testing.T) *snapshot.Snapshot {
	t.Helper()
	snap, err := snapshot.Decode([]byte(`{
		"channels": {
			"whatsapp": {"configured": true, "running": true, "connected": true, "linked": true},
			"telegram": {"configured": true, "running": true, "lastError": "flood wait"}
		},
		"channelAccounts": {
			"telegram": [
				{"accountId": "bot1", "name": "Main Bot"},
				{"accountId": "bot2"}
			]
		}
	}`), time.Now())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return snap
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestNewShowsDefaultOrderWithoutSnapshot(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)
	if len(m.items) != 8 {
		t.Fatalf("got %d items, want the 8 default channels", len(m.items))
	}
	if m.items[0].ID != "whatsapp" {
		t.Errorf("first item = %s, want whatsapp", m.items[0].ID)
	}
}

func TestSnapshotUpdateRebuildsRows(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})

	if m.fetchErr != nil {
		t.Fatalf("fetchErr = %v", m.fetchErr)
	}
	if m.lastFetch.IsZero() {
		t.Error("lastFetch should be stamped")
	}

	var tg, wa bool
	for _, it := range m.items {
		switch it.ID {
		case "telegram":
			tg = true
			if !it.HasError {
				t.Error("telegram should carry the error flag")
			}
			if it.AccountCount != 2 {
				t.Errorf("telegram accounts = %d, want 2", it.AccountCount)
			}
		case "whatsapp":
			wa = true
			if it.Class().Summary() != "Connected" {
				t.Errorf("whatsapp class = %s", it.Class().Summary())
			}
		}
	}
	if !tg || !wa {
		t.Fatal("expected telegram and whatsapp rows")
	}
}

func TestFetchErrorKeepsLastSnapshot(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})
	before := len(m.items)

	m, _ = apply(t, m, SnapshotMsg{Err: errors.New("connection refused")})
	if m.snap == nil || len(m.items) != before {
		t.Error("a failed poll must not drop the last good snapshot")
	}
	if !strings.Contains(m.View(), "stale") {
		t.Error("view should flag stale data")
	}
}

func TestFocusMovesClamped(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)

	m, _ = apply(t, m, keyMsg("up"))
	if m.nav.Focused != 0 {
		t.Errorf("focus = %d, want clamp at 0", m.nav.Focused)
	}

	for i := 0; i < 20; i++ {
		m, _ = apply(t, m, keyMsg("down"))
	}
	if m.nav.Focused != len(m.items)-1 {
		t.Errorf("focus = %d, want clamp at %d", m.nav.Focused, len(m.items)-1)
	}

	m, _ = apply(t, m, keyMsg("g"))
	if m.nav.Focused != 0 {
		t.Errorf("home: focus = %d", m.nav.Focused)
	}
	m, _ = apply(t, m, keyMsg("G"))
	if m.nav.Focused != len(m.items)-1 {
		t.Errorf("end: focus = %d", m.nav.Focused)
	}
}

func TestExpandKeySemantics(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})

	m, _ = apply(t, m, keyMsg("enter"))
	if m.nav.Expanded != "whatsapp" {
		t.Fatalf("expanded = %q, want whatsapp", m.nav.Expanded)
	}

	// Re-activating the expanded row is idempotent: it stays expanded
	// and keeps its tab. Esc is the only collapse key.
	m, _ = apply(t, m, keyMsg("tab"), keyMsg("enter"))
	if m.nav.Expanded != "whatsapp" {
		t.Fatalf("expanded = %q, want whatsapp to stay expanded", m.nav.Expanded)
	}
	if m.nav.ActiveTab != nav.TabConfig {
		t.Errorf("tab = %s, want config preserved across re-expand", m.nav.ActiveTab)
	}

	// Expanding a different channel implicitly collapses the first and
	// resets the tab.
	m, _ = apply(t, m, keyMsg("down"), keyMsg("enter"))
	if m.nav.Expanded != "telegram" {
		t.Fatalf("expanded = %q, want telegram", m.nav.Expanded)
	}
	if m.nav.ActiveTab != nav.TabStatus {
		t.Error("switching expansion should reset the tab")
	}
}

func TestEscCollapsesThenQuits(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)}, keyMsg("enter"))

	m, cmd := apply(t, m, keyMsg("esc"))
	if !m.nav.IsCollapsed() {
		t.Fatal("first esc should collapse")
	}
	if cmd != nil {
		t.Fatal("collapse should not quit")
	}

	_, cmd = apply(t, m, keyMsg("esc"))
	if cmd == nil {
		t.Fatal("second esc should quit")
	}
}

func TestTabCyclingSkipsHiddenAccounts(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})

	// WhatsApp has no accounts, so the accounts tab is hidden.
	m, _ = apply(t, m, keyMsg("enter"), keyMsg("tab"))
	if m.nav.ActiveTab != nav.TabConfig {
		t.Errorf("tab = %s, want config (accounts hidden)", m.nav.ActiveTab)
	}

	// Telegram has two accounts; the accounts tab is next after status.
	m, _ = apply(t, m, keyMsg("esc"), keyMsg("down"), keyMsg("enter"), keyMsg("tab"))
	if m.nav.ActiveTab != nav.TabAccounts {
		t.Errorf("tab = %s, want accounts", m.nav.ActiveTab)
	}

	m, _ = apply(t, m, keyMsg("shift+tab"))
	if m.nav.ActiveTab != nav.TabStatus {
		t.Errorf("tab = %s, want status after cycling back", m.nav.ActiveTab)
	}
}

func TestProbeActionRunsForExpandedChannel(t *testing.T) {
	gw := &fakeGateway{}
	m := New(gw, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})

	// Expand telegram and hit probe.
	m, cmd := apply(t, m, keyMsg("down"), keyMsg("enter"), keyMsg("p"))
	if cmd == nil {
		t.Fatal("probe should produce a command")
	}
	if !m.busy["telegram"] {
		t.Error("channel should be busy while the action runs")
	}

	msg := cmd()
	res, ok := msg.(ActionResultMsg)
	if !ok {
		t.Fatalf("got %T, want ActionResultMsg", msg)
	}
	if res.Channel != "telegram" || res.Err != nil {
		t.Errorf("result = %+v", res)
	}
	if len(gw.probes) != 1 || gw.probes[0] != "telegram" {
		t.Errorf("probes = %v", gw.probes)
	}

	m, _ = apply(t, m, res)
	if m.busy["telegram"] {
		t.Error("action completion should clear busy")
	}
}

func TestProbeIgnoredWhileBusy(t *testing.T) {
	gw := &fakeGateway{}
	m := New(gw, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})

	m, _ = apply(t, m, keyMsg("down"), keyMsg("enter"), keyMsg("p"))
	_, cmd := apply(t, m, keyMsg("p"))
	if cmd != nil {
		t.Error("second probe while busy should be ignored")
	}
}

func TestWhatsAppActions(t *testing.T) {
	gw := &fakeGateway{}
	m := New(gw, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})

	m, cmd := apply(t, m, keyMsg("enter"), keyMsg("o"))
	if cmd == nil {
		t.Fatal("QR login should produce a command")
	}
	cmd()
	if gw.qrCalls != 1 {
		t.Errorf("qrCalls = %d", gw.qrCalls)
	}

	// Linked, so logout is offered too.
	m, _ = apply(t, m, ActionResultMsg{Channel: "whatsapp", Action: "qr-login"})
	_, cmd = apply(t, m, keyMsg("x"))
	if cmd == nil {
		t.Fatal("logout should produce a command")
	}
	cmd()
	if gw.logouts != 1 {
		t.Errorf("logouts = %d", gw.logouts)
	}
}

func TestConfigReloadReordersDisabled(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})

	cfg := testConfig()
	cfg.Channels.Disabled = []string{"whatsapp"}
	m, _ = apply(t, m, ConfigReloadedMsg{Cfg: cfg})

	if m.items[0].ID == "whatsapp" {
		t.Error("disabled channel should sort after enabled ones")
	}
	if m.items[len(m.items)-1].ID != "whatsapp" {
		t.Errorf("last item = %s, want whatsapp", m.items[len(m.items)-1].ID)
	}
}

func TestExtensionChannelsAppearInList(t *testing.T) {
	exts := []config.Extension{{Key: "matrix", Label: "Matrix"}}
	m := New(&fakeGateway{}, testConfig(), exts)

	last := m.items[len(m.items)-1]
	if last.ID != "matrix" {
		t.Fatalf("last item = %s, want matrix", last.ID)
	}
	if last.Label != "Matrix" {
		t.Errorf("label = %q, want extension label", last.Label)
	}
}

func TestViewRendersDetail(t *testing.T) {
	m := New(&fakeGateway{}, testConfig(), nil)
	m, _ = apply(t, m, SnapshotMsg{Snap: testSnapshot(t)})
	m, _ = apply(t, m, keyMsg("down"), keyMsg("enter"))

	view := m.View()
	if !strings.Contains(view, "Status") {
		t.Error("detail should show the tab bar")
	}
	if !strings.Contains(view, "flood wait") {
		t.Error("status tab should surface the channel error")
	}

	m, _ = apply(t, m, keyMsg("tab"))
	view = m.View()
	if !strings.Contains(view, "Main Bot") {
		t.Error("accounts tab should list account names")
	}
	if !strings.Contains(view, "bot2") {
		t.Error("accounts tab should fall back to the account id")
	}
}
