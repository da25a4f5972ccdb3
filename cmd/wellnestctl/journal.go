package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	journalCmd := &cobra.Command{Use: "journal", Short: "Journal entry operations"}

	// add
	var content, date string
	var moodValue int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"content": content, "date": date}
			if cmd.Flags().Changed("mood") {
				payload["moodValue"] = moodValue
			}
			resp, err := newClient().R().SetBody(payload).Post("/api/journal-entries")
			return printResult(resp, err)
		},
	}
	addCmd.Flags().StringVarP(&content, "content", "c", "", "Entry text (required)")
	addCmd.Flags().StringVarP(&date, "date", "d", "", "Date YYYY-MM-DD (required)")
	addCmd.Flags().IntVarP(&moodValue, "mood", "m", 0, "Optional mood value")
	_ = addCmd.MarkFlagRequired("content")
	_ = addCmd.MarkFlagRequired("date")
	journalCmd.AddCommand(addCmd)

	// list
	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := newClient().R()
			if cmd.Flags().Changed("limit") {
				req.SetQueryParam("limit", strconv.Itoa(limit))
			}
			resp, err := req.Get("/api/journal-entries")
			return printResult(resp, err)
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum entries to return")
	journalCmd.AddCommand(listCmd)

	// range
	var start, end string
	rangeCmd := &cobra.Command{
		Use:   "range",
		Short: "List journal entries in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" || end == "" {
				return fmt.Errorf("--start and --end required")
			}
			resp, err := newClient().R().
				SetQueryParam("startDate", start).
				SetQueryParam("endDate", end).
				Get("/api/journal-entries")
			return printResult(resp, err)
		},
	}
	rangeCmd.Flags().StringVarP(&start, "start", "s", "", "Start date YYYY-MM-DD (required)")
	rangeCmd.Flags().StringVarP(&end, "end", "e", "", "End date YYYY-MM-DD (required)")
	journalCmd.AddCommand(rangeCmd)

	rootCmd.AddCommand(journalCmd)
}
