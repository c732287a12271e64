package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"bridgemon/internal/output"
	"bridgemon/internal/util"
)

var diffAfter string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Dump the raw gateway status payload",
	Long: `Dump the gateway's raw status payload for debugging.

With --diff, takes a second capture after the given interval and prints
what changed between the two.

Examples:
  # Raw payload
  bridgemon snapshot

  # What changed over ten seconds
  bridgemon snapshot --diff 10s`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&diffAfter, "diff", "", "capture twice, separated by this interval, and diff")
	snapshotCmd.Flags().BoolVar(&jsonFlag, "json", false, "output as JSON")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, _, client, err := loadSetup()
	if err != nil {
		return err
	}

	fetch := func() ([]byte, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.GatewayTimeout())
		defer cancel()
		return client.FetchRaw(ctx)
	}

	first, err := fetch()
	if err != nil {
		return err
	}

	formatter := output.New(output.WithJSON(output.DetectFormat(jsonFlag) == output.FormatJSON))

	if diffAfter == "" {
		formatter.Printf("%s\n", first)
		return nil
	}

	wait, err := util.ParseDuration(diffAfter)
	if err != nil {
		return err
	}
	firstAt := time.Now()
	time.Sleep(wait)

	second, err := fetch()
	if err != nil {
		return err
	}

	diff := output.ComputeDiff(
		output.FormatTime(firstAt), string(first),
		output.FormatTime(time.Now()), string(second),
	)

	if formatter.IsJSON() {
		return formatter.JSON(diff)
	}

	if diff.Identical() {
		formatter.Textln("no changes over %s", util.FormatDuration(wait))
		return nil
	}
	formatter.Textln("similarity: %.2f", diff.Similarity)
	formatter.Printf("%s", diff.UnifiedDiff)
	return nil
}
