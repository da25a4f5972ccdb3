package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	moodsCmd := &cobra.Command{Use: "moods", Short: "Mood check-in operations"}

	// record
	var value int
	var note, date string
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record a mood check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"value": value, "date": date}
			if note != "" {
				payload["note"] = note
			}
			resp, err := newClient().R().SetBody(payload).Post("/api/moods")
			return printResult(resp, err)
		},
	}
	recordCmd.Flags().IntVarP(&value, "value", "v", 0, "Mood value 1-5 (required)")
	recordCmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	recordCmd.Flags().StringVarP(&date, "date", "d", "", "Date YYYY-MM-DD (required)")
	_ = recordCmd.MarkFlagRequired("value")
	_ = recordCmd.MarkFlagRequired("date")
	moodsCmd.AddCommand(recordCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get DATE",
		Short: "Get the mood for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/moods/" + args[0])
			return printResult(resp, err)
		},
	}
	moodsCmd.AddCommand(getCmd)

	// range
	var start, end string
	rangeCmd := &cobra.Command{
		Use:   "range",
		Short: "List moods in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" || end == "" {
				return fmt.Errorf("--start and --end required")
			}
			resp, err := newClient().R().
				SetQueryParam("startDate", start).
				SetQueryParam("endDate", end).
				Get("/api/moods")
			return printResult(resp, err)
		},
	}
	rangeCmd.Flags().StringVarP(&start, "start", "s", "", "Start date YYYY-MM-DD (required)")
	rangeCmd.Flags().StringVarP(&end, "end", "e", "", "End date YYYY-MM-DD (required)")
	moodsCmd.AddCommand(rangeCmd)

	rootCmd.AddCommand(moodsCmd)
}
