package icons

import "testing"

func TestFromName(t *testing.T) {
	if got := FromName("ascii"); got != ASCII {
		t.Error("ascii should return the ASCII set")
	}
	set := FromName("unicode")
	if set.Check != Unicode.Check {
		t.Errorf("Check = %q, want unicode check", set.Check)
	}
}

func TestWithFallback(t *testing.T) {
	partial := IconSet{Check: "Y"}
	merged := partial.WithFallback(ASCII)
	if merged.Check != "Y" {
		t.Errorf("Check = %q, explicit icon lost", merged.Check)
	}
	if merged.Cross != ASCII.Cross {
		t.Errorf("Cross = %q, want fallback %q", merged.Cross, ASCII.Cross)
	}
}

func TestChannelIcon(t *testing.T) {
	set := ASCII
	if got := set.ChannelIcon("whatsapp"); got != set.WhatsApp {
		t.Errorf("whatsapp icon = %q", got)
	}
	if got := set.ChannelIcon("Telegram"); got != set.Telegram {
		t.Error("lookup should be case-insensitive")
	}
	if got := set.ChannelIcon("matrix"); got != set.Extension {
		t.Errorf("unknown key icon = %q, want extension", got)
	}
}

func TestDetectHonorsEnv(t *testing.T) {
	t.Setenv("BRIDGEMON_ICONS", "ascii")
	if got := Detect(); got != ASCII {
		t.Error("BRIDGEMON_ICONS=ascii should force the ASCII set")
	}
}
