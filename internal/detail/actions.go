package detail

import "bridgemon/internal/snapshot"

// Action ids understood by the gateway client.
const (
	ActionProbe   = "probe"
	ActionQRLogin = "qr-login"
	ActionLogout  = "logout"
)

// Action is one offered action button. The composer decides existence and
// enablement only; execution belongs to the gateway client.
type Action struct {
	ID      string
	Label   string
	Enabled bool
}

// probeKinds support the generic "probe connection" action.
var probeKinds = map[snapshot.Kind]bool{
	snapshot.KindTelegram:   true,
	snapshot.KindDiscord:    true,
	snapshot.KindSlack:      true,
	snapshot.KindSignal:     true,
	snapshot.KindGoogleChat: true,
}

// Actions returns the action set for a channel. Every action is disabled
// while busy (an action is already in flight). An empty set means the host
// renders NoActionsNote.
func Actions(st snapshot.Status, busy bool) []Action {
	if st == nil {
		return nil
	}

	switch st.Kind() {
	case snapshot.KindWhatsApp:
		wa, _ := st.(*snapshot.WhatsApp)
		actions := []Action{
			{ID: ActionQRLogin, Label: "Link device (QR)", Enabled: !busy},
		}
		if wa != nil && wa.Linked.IsTrue() {
			actions = append(actions, Action{ID: ActionLogout, Label: "Log out", Enabled: !busy})
		}
		return actions
	default:
		if probeKinds[st.Kind()] {
			return []Action{
				{ID: ActionProbe, Label: "Probe connection", Enabled: !busy},
			}
		}
		return nil
	}
}

// PendingQR returns the current QR payload for a WhatsApp channel, empty
// when no login is pending. The actions tab shows the QR only while the
// gateway reports one.
func PendingQR(st snapshot.Status) string {
	if wa, ok := st.(*snapshot.WhatsApp); ok {
		return wa.QR.String()
	}
	return ""
}
