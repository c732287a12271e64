package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bridgemon/internal/channel"
	"bridgemon/internal/config"
	"bridgemon/internal/detail"
	"bridgemon/internal/output"
	"bridgemon/internal/snapshot"
	"bridgemon/internal/util"
)

var statusCmd = &cobra.Command{
	Use:   "status [CHANNEL]",
	Short: "Show channel status",
	Long: `Show the status of every gateway channel, or one channel in detail.

Without arguments, prints one row per channel.
With a channel key, prints the channel's full status fields.

Examples:
  # All channels
  bridgemon status

  # One channel in detail
  bridgemon status whatsapp

  # Output as JSON
  bridgemon status --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&jsonFlag, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

// statusRow is the JSON shape of one channel row.
type statusRow struct {
	Channel      string `json:"channel"`
	Label        string `json:"label,omitempty"`
	Status       string `json:"status"`
	Accounts     int    `json:"accounts,omitempty"`
	LastActivity string `json:"lastActivity,omitempty"`
	Error        bool   `json:"error,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, exts, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GatewayTimeout())
	defer cancel()

	snap, err := client.FetchSnapshot(ctx)
	if err != nil {
		return err
	}

	formatter := output.New(output.WithJSON(output.DetectFormat(jsonFlag) == output.FormatJSON))
	now := time.Now()

	if len(args) == 1 {
		return statusDetail(formatter, cfg, exts, snap, args[0], now)
	}

	enabled := func(key string) bool { return cfg.Enabled(key, exts) }
	order := channel.DisplayOrder(config.MergeOrder(channel.ResolveOrder(snap), exts), enabled)

	rows := make([]statusRow, 0, len(order))
	items := make([]channel.ListItem, 0, len(order))
	for _, key := range order {
		it := channel.Summarize(key, snap, nil)
		items = append(items, it)

		row := statusRow{
			Channel:  it.ID,
			Status:   it.Class().Summary(),
			Accounts: it.AccountCount,
			Error:    it.HasError,
		}
		if it.Label != it.ID {
			row.Label = it.Label
		}
		if !it.LastActivity.IsZero() {
			row.LastActivity = output.FormatTime(it.LastActivity)
		}
		rows = append(rows, row)
	}

	if formatter.IsJSON() {
		return formatter.JSON(map[string]interface{}{
			"fetchedAt": output.FormatTime(snap.FetchedAt),
			"channels":  rows,
		})
	}

	table := output.NewTable(formatter.Writer(), "CHANNEL", "STATUS", "ACCOUNTS", "LAST ACTIVITY")
	for _, it := range items {
		last := ""
		if !it.LastActivity.IsZero() {
			last = util.FormatAgo(it.LastActivity, now)
		}
		table.AddRow(it.Label, it.Class().Summary(), it.AccountSuffix(), last)
	}
	table.Render()
	return nil
}

func statusDetail(formatter *output.Formatter, cfg *config.Config, exts []config.Extension, snap *snapshot.Snapshot, key string, now time.Time) error {
	st, _ := snap.Channel(key)
	accounts := snap.ChannelAccounts(key)
	fields := detail.StatusFields(st, accounts, now)
	label, labelFrom := detail.ResolveLabel(cfg, exts, snap, key)

	if formatter.IsJSON() {
		payload := map[string]interface{}{
			"channel": key,
			"enabled": cfg.Enabled(key, exts),
		}
		if labelFrom != detail.LabelFromKey {
			payload["label"] = label
			payload["labelFrom"] = labelFrom
		}
		if fields == nil {
			payload["note"] = detail.NoDataNote
		} else {
			kv := make(map[string]string, len(fields))
			for _, f := range fields {
				kv[f.Label] = f.Value
			}
			payload["fields"] = kv
		}
		if len(accounts) > 0 {
			payload["accounts"] = detail.AccountRows(accounts, now)
		}
		return formatter.JSON(payload)
	}

	formatter.Textln("%s", label)
	if fields == nil {
		formatter.Textln("  %s", detail.NoDataNote)
		return nil
	}
	for _, f := range fields {
		formatter.Textln("  %-12s %s", f.Label, f.Value)
	}

	if rows := detail.AccountRows(accounts, now); len(rows) > 0 {
		formatter.Line()
		formatter.Textln("  Accounts:")
		for _, r := range rows {
			last := "never"
			if !r.LastInbound.IsZero() {
				last = util.FormatAgo(r.LastInbound, now)
			}
			formatter.Textln("    %-20s run %-6s conn %-6s last %s",
				r.DisplayName(), r.Running.Label(), r.Connected.Label(), last)
			if r.Err != "" {
				formatter.Textln("      %s", r.Err)
			}
		}
	}

	if actions := detail.Actions(st, false); len(actions) > 0 {
		formatter.Line()
		names := make([]string, 0, len(actions))
		for _, a := range actions {
			names = append(names, a.Label)
		}
		formatter.Textln("  Actions: %s", fmt.Sprint(names))
	}
	return nil
}
