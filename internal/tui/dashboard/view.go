package dashboard

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"bridgemon/internal/channel"
	"bridgemon/internal/detail"
	"bridgemon/internal/nav"
	"bridgemon/internal/tui/styles"
	"bridgemon/internal/util"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.renderHeader() + "\n\n")

	if len(m.items) == 0 {
		b.WriteString("  " + m.styles.Dim.Italic(true).Render("no channels") + "\n")
	}

	now := time.Now()
	for i, it := range m.items {
		b.WriteString(m.renderRow(i, it, now) + "\n")
		if m.nav.IsExpanded(it.ID) {
			b.WriteString(m.renderDetail(it, now) + "\n")
		}
	}

	b.WriteString("\n")
	if line := m.renderStatusLine(now); line != "" {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("  " + m.renderHelpBar() + "\n")

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("bridgemon")
	sub := m.styles.Dim.Render("channel status")
	return "  " + title + " " + sub
}

func (m Model) renderRow(index int, it channel.ListItem, now time.Time) string {
	focused := index == m.nav.Focused

	cursor := "  "
	if focused {
		cursor = m.styles.ListCursor.Render(m.icons.Pointer) + " "
	}

	labelWidth := 24
	label := styles.Truncate(it.Label, labelWidth)
	name := m.icons.ChannelIcon(it.ID) + " " + styles.PadRight(label, labelWidth)
	if focused {
		name = m.styles.Bold.Render(name)
	} else {
		name = m.styles.Normal.Render(name)
	}

	parts := []string{name, styles.StatusBadge(it.Class())}

	if suffix := it.AccountSuffix(); suffix != "" {
		parts = append(parts, m.styles.Dim.Render(suffix))
	}
	if !it.LastActivity.IsZero() {
		parts = append(parts, m.styles.Dim.Render(util.FormatAgo(it.LastActivity, now)))
	}

	return "  " + cursor + styles.BadgeBar(parts...)
}

func (m Model) renderDetail(it channel.ListItem, now time.Time) string {
	st := m.expandedStatus()
	visible := detail.VisibleTabs(it.AccountCount)

	contentWidth := m.width - 14
	if contentWidth < 20 {
		contentWidth = 20
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar(visible) + "\n")

	switch m.nav.ActiveTab {
	case nav.TabAccounts:
		b.WriteString(m.renderAccountsTab(it, now))
	case nav.TabConfig:
		label, labelFrom := detail.ResolveLabel(m.cfg, m.exts, m.snap, it.ID)
		b.WriteString(m.renderFields(detail.ConfigFields(it.ID, st, m.cfg.Enabled(it.ID, m.exts), label, labelFrom), contentWidth))
	case nav.TabActions:
		b.WriteString(m.renderActionsTab(it, now))
	default:
		fields := detail.StatusFields(st, m.snap.ChannelAccounts(it.ID), now)
		if fields == nil {
			b.WriteString(m.styles.Dim.Italic(true).Render(detail.NoDataNote) + "\n")
		} else {
			b.WriteString(m.renderFields(fields, contentWidth))
		}
	}

	body := strings.TrimRight(b.String(), "\n")
	return lipgloss.NewStyle().MarginLeft(4).Render(m.styles.Box.Render(body))
}

func (m Model) renderTabBar(visible []nav.Tab) string {
	parts := make([]string, 0, len(visible))
	for _, t := range visible {
		if t == m.nav.ActiveTab {
			parts = append(parts, m.styles.TabActive.Render(t.Title()))
		} else {
			parts = append(parts, m.styles.Tab.Render(t.Title()))
		}
	}
	return strings.Join(parts, m.styles.Divider.Render("|"))
}

func (m Model) renderFields(fields []detail.Field, width int) string {
	var b strings.Builder
	for _, f := range fields {
		label := m.styles.Dim.Render(styles.PadRight(f.Label, 12))
		value := f.Value
		if lipgloss.Width(value) > width {
			value = wordwrap.String(value, width)
		}
		b.WriteString(label + " " + m.toneStyle(f.Tone).Render(value) + "\n")
	}
	return b.String()
}

func (m Model) toneStyle(tone detail.Tone) lipgloss.Style {
	switch tone {
	case detail.ToneGood:
		return m.styles.Success
	case detail.ToneBad:
		return m.styles.Error
	case detail.ToneWarn:
		return m.styles.Warning
	case detail.ToneMuted:
		return m.styles.Dim
	default:
		return m.styles.Normal
	}
}

func (m Model) renderAccountsTab(it channel.ListItem, now time.Time) string {
	rows := detail.AccountRows(m.snap.ChannelAccounts(it.ID), now)
	if len(rows) == 0 {
		return m.styles.Dim.Italic(true).Render(detail.EmptyAccountsNote) + "\n"
	}

	var b strings.Builder
	for _, r := range rows {
		line := styles.LivenessIcon(r.Connected) + " " +
			m.styles.Normal.Render(styles.PadRight(styles.Truncate(r.DisplayName(), 20), 20)) + " " +
			m.styles.Dim.Render("run "+r.Running.Label()) + "  " +
			m.styles.Dim.Render("conn "+r.Connected.Label())
		if !r.LastInbound.IsZero() {
			line += "  " + m.styles.Dim.Render(util.FormatAgo(r.LastInbound, now))
		}
		if r.Err != "" {
			line += "  " + m.styles.Error.Render(styles.Truncate(r.Err, 40))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderActionsTab(it channel.ListItem, _ time.Time) string {
	status := m.expandedStatus()
	actions := detail.Actions(status, m.busy[it.ID])
	if len(actions) == 0 {
		return m.styles.Dim.Italic(true).Render(detail.NoActionsNote) + "\n"
	}

	var b strings.Builder
	for _, a := range actions {
		hint := actionHint(a.ID)
		if a.Enabled {
			b.WriteString(m.styles.Highlight.Render(hint) + " " + m.styles.Normal.Render(a.Label) + "\n")
		} else {
			b.WriteString(m.styles.Dim.Render(hint+" "+a.Label+" (busy)") + "\n")
		}
	}

	if qr := detail.PendingQR(status); qr != "" {
		b.WriteString("\n" + m.styles.Dim.Render("scan to link:") + "\n")
		b.WriteString(m.styles.Normal.Render(qr) + "\n")
	}
	return b.String()
}

func actionHint(actionID string) string {
	switch actionID {
	case detail.ActionProbe:
		return "[p]"
	case detail.ActionQRLogin:
		return "[o]"
	case detail.ActionLogout:
		return "[x]"
	default:
		return "[?]"
	}
}

func (m Model) renderStatusLine(now time.Time) string {
	var parts []string

	if m.fetchErr != nil {
		parts = append(parts, m.styles.Warning.Render(m.icons.Warning+" stale"))
		parts = append(parts, m.styles.Dim.Render(styles.Truncate(m.fetchErr.Error(), 60)))
	}
	if !m.lastFetch.IsZero() {
		parts = append(parts, m.styles.Dim.Render("updated "+util.FormatAgo(m.lastFetch, now)))
	} else if m.fetchErr == nil {
		parts = append(parts, m.styles.Dim.Render("connecting..."))
	}
	if m.actionNote != "" {
		parts = append(parts, m.styles.Error.Render(styles.Truncate(m.actionNote, 70)))
	}

	return strings.Join(parts, "  ")
}

func (m Model) renderHelpBar() string {
	bindings := []string{
		dashKeys.Up.Help().Key + "/" + dashKeys.Down.Help().Key + " move",
		dashKeys.Expand.Help().Key + " " + dashKeys.Expand.Help().Desc,
	}
	if !m.nav.IsCollapsed() {
		bindings = append(bindings,
			dashKeys.NextTab.Help().Key+" tabs",
			dashKeys.Back.Help().Key+" collapse",
		)
	}
	bindings = append(bindings,
		dashKeys.Refresh.Help().Key+" refresh",
		dashKeys.Quit.Help().Key+" quit",
	)
	return m.styles.Help.Render(strings.Join(bindings, "  ·  "))
}
