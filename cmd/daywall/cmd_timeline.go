package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/daywall/internal/app"
)

var planDate string

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the image schedule for a day",
	Long: `Print every (time, image) pair of the selected pack for a day. The image
that would be applied right now is marked.

Examples:
  daywall timeline
  daywall timeline --date 2024-12-21`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Timeline(options(cmd), planDate)
	},
}

var anchorsCmd = &cobra.Command{
	Use:   "anchors",
	Short: "Print midnight, sun and moon times for a day",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Anchors(options(cmd), planDate)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{timelineCmd, anchorsCmd} {
		cmd.Flags().StringVar(&planDate, "date", "", "calendar date as YYYY-MM-DD (default today)")
	}
	rootCmd.AddCommand(timelineCmd, anchorsCmd)
}
