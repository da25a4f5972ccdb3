package main

import (
	"github.com/spf13/cobra"
)

func init() {
	var date string
	analyticsCmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show the analytics summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := newClient().R()
			if date != "" {
				req.SetQueryParam("date", date)
			}
			resp, err := req.Get("/api/analytics")
			return printResult(resp, err)
		},
	}
	analyticsCmd.Flags().StringVarP(&date, "date", "d", "", "Reference date YYYY-MM-DD (default: today)")

	rootCmd.AddCommand(analyticsCmd)
}
