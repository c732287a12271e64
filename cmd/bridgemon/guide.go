package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"bridgemon/internal/output"
)

const guideText = `# Bridgemon Guide

Bridgemon is a terminal dashboard for a multi-channel messaging gateway.
It polls the gateway's status endpoint and renders one row per channel.

## The channel list

Each row shows the channel's status class, derived in this order:

1. **Error** - the channel reported an error
2. **Connected** - connected to the remote service
3. **Running** - running but not (yet) connected
4. **Configured** - configured but not running
5. **Not configured**

Disabled channels sort after enabled ones but stay visible.

## Keys

| Key | Action |
|-----|--------|
| up/down, j/k | move focus |
| g / G | first / last channel |
| enter, space | expand the focused channel |
| tab / shift+tab | switch detail tabs |
| p | probe the expanded channel's connection |
| o | start WhatsApp QR login |
| x | log out the WhatsApp device |
| r | refresh now |
| esc | collapse, then quit |
| q | quit |

## Detail tabs

- **Status**: per-kind fields; unknown flags show as n/a, never No.
- **Accounts**: per-account liveness (hidden below two accounts).
- **Config**: enablement and labels; editing happens in the gateway config.
- **Actions**: what the gateway can do for this channel right now.

## Configuration

Bridgemon reads ` + "`~/.config/bridgemon/config.toml`" + ` and an optional
` + "`extensions.yaml`" + ` next to it declaring extension channels. Both files
reload live while the dashboard runs.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the user guide",
	RunE:  runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	if !output.IsTerminal() {
		fmt.Print(guideText)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(output.TerminalWidth(80)),
	)
	if err != nil {
		fmt.Print(guideText)
		return nil
	}

	rendered, err := r.Render(guideText)
	if err != nil {
		fmt.Print(guideText)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
