package detail

import (
	"fmt"
	"time"

	"bridgemon/internal/snapshot"
	"bridgemon/internal/util"
)

// Presenter renders the status tab fields for one channel kind.
type Presenter interface {
	Fields(st snapshot.Status, accounts []snapshot.Account, now time.Time) []Field
}

// presenters is the closed per-kind strategy set; For falls back to the
// generic presenter for anything not listed here.
var presenters = map[snapshot.Kind]Presenter{
	snapshot.KindWhatsApp:   whatsappPresenter{},
	snapshot.KindTelegram:   probePresenter{},
	snapshot.KindDiscord:    probePresenter{},
	snapshot.KindSlack:      probePresenter{},
	snapshot.KindSignal:     probePresenter{},
	snapshot.KindGoogleChat: probePresenter{},
	snapshot.KindIMessage:   commonPresenter{},
	snapshot.KindNostr:      nostrPresenter{},
}

// For returns the presenter for a kind, the generic one for unknown kinds.
func For(kind snapshot.Kind) Presenter {
	if p, ok := presenters[kind]; ok {
		return p
	}
	return genericPresenter{}
}

// StatusFields dispatches to the kind's presenter and appends the error
// callout when the channel reports one. A nil status (channel missing from
// the current snapshot) yields nil; the host renders the no-data note.
func StatusFields(st snapshot.Status, accounts []snapshot.Account, now time.Time) []Field {
	if st == nil {
		return nil
	}
	fields := For(st.Kind()).Fields(st, accounts, now)
	if msg := ErrorCallout(st); msg != "" {
		fields = append(fields, Field{Label: "Last error", Value: msg, Tone: ToneBad})
	}
	return fields
}

// flagField renders a tri-state flag: Yes, No, or n/a. Absence renders as
// n/a, never as No.
func flagField(label string, b snapshot.OptBool) Field {
	switch {
	case b.IsTrue():
		return Field{Label: label, Value: "Yes", Tone: ToneGood}
	case b.IsFalse():
		return Field{Label: label, Value: "No", Tone: ToneBad}
	default:
		return Field{Label: label, Value: "n/a", Tone: ToneMuted}
	}
}

func commonFields(c snapshot.Common) []Field {
	return []Field{
		flagField("Configured", c.Configured),
		flagField("Running", c.Running),
		flagField("Connected", c.Connected),
	}
}

func probeField(p *snapshot.ProbeResult, now time.Time) Field {
	if p == nil {
		return Field{Label: "Last probe", Value: "never", Tone: ToneMuted}
	}
	when := ""
	if ts, ok := p.CheckedAt.Time(); ok {
		when = " (" + util.FormatAgo(ts, now) + ")"
	}
	switch {
	case p.OK.IsTrue():
		return Field{Label: "Last probe", Value: "ok" + when, Tone: ToneGood}
	case p.OK.IsFalse():
		value := "failed"
		if p.Detail != "" {
			value = "failed: " + p.Detail.String()
		}
		return Field{Label: "Last probe", Value: value + when, Tone: ToneBad}
	default:
		value := "error"
		if p.Detail != "" {
			value = "error: " + p.Detail.String()
		}
		return Field{Label: "Last probe", Value: value + when, Tone: ToneWarn}
	}
}

type whatsappPresenter struct{}

func (whatsappPresenter) Fields(st snapshot.Status, _ []snapshot.Account, _ time.Time) []Field {
	wa, ok := st.(*snapshot.WhatsApp)
	if !ok {
		return commonFields(baseOf(st))
	}
	fields := commonFields(wa.Common)
	fields = append(fields, flagField("Linked", wa.Linked))
	if age := wa.AuthAge.Duration(); age > 0 {
		fields = append(fields, Field{Label: "Auth age", Value: util.FormatDuration(age)})
	}
	return fields
}

// probePresenter covers every kind whose distinguishing field is the last
// connectivity probe (telegram, discord, slack, signal, googlechat).
type probePresenter struct{}

func (probePresenter) Fields(st snapshot.Status, _ []snapshot.Account, now time.Time) []Field {
	fields := commonFields(baseOf(st))

	var mode snapshot.Text
	var probe *snapshot.ProbeResult
	switch s := st.(type) {
	case *snapshot.Telegram:
		mode, probe = s.Mode, s.Probe
	case *snapshot.Discord:
		mode, probe = s.Mode, s.Probe
	case *snapshot.Slack:
		mode, probe = s.Mode, s.Probe
	case *snapshot.Signal:
		probe = s.Probe
	case *snapshot.GoogleChat:
		probe = s.Probe
	}

	if mode != "" {
		fields = append(fields, Field{Label: "Mode", Value: mode.String()})
	}
	fields = append(fields, probeField(probe, now))
	return fields
}

type commonPresenter struct{}

func (commonPresenter) Fields(st snapshot.Status, _ []snapshot.Account, _ time.Time) []Field {
	return commonFields(baseOf(st))
}

type nostrPresenter struct{}

func (nostrPresenter) Fields(st snapshot.Status, _ []snapshot.Account, _ time.Time) []Field {
	fields := commonFields(baseOf(st))
	if n, ok := st.(*snapshot.Nostr); ok && n.Relays > 0 {
		fields = append(fields, Field{Label: "Relays", Value: fmt.Sprintf("%d", n.Relays)})
	}
	return fields
}

// genericPresenter is the fallback for extension channels and unknown
// kinds: the three universal flags (n/a for anything absent) plus the
// first account's last-inbound time.
type genericPresenter struct{}

func (genericPresenter) Fields(st snapshot.Status, accounts []snapshot.Account, now time.Time) []Field {
	fields := commonFields(baseOf(st))

	last := Field{Label: "Last message", Value: "n/a", Tone: ToneMuted}
	if len(accounts) > 0 {
		if ts, ok := accounts[0].LastInbound.Time(); ok {
			last = Field{Label: "Last message", Value: util.FormatAgo(ts, now)}
		}
	}
	return append(fields, last)
}
