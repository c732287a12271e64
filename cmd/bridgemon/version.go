package main

import (
	"github.com/spf13/cobra"

	"bridgemon/internal/output"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter := output.New(output.WithJSON(output.DetectFormat(jsonFlag) == output.FormatJSON))
		if formatter.IsJSON() {
			return formatter.JSON(map[string]string{
				"version": version,
				"commit":  commit,
			})
		}
		formatter.Textln("bridgemon %s (%s)", version, commit)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&jsonFlag, "json", false, "output as JSON")
	rootCmd.AddCommand(versionCmd)
}
