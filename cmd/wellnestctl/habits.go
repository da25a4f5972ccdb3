package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	habitsCmd := &cobra.Command{Use: "habits", Short: "Habit operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/habits")
			return printResult(resp, err)
		},
	}
	habitsCmd.AddCommand(listCmd)

	// create
	var name, icon, target, color string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a habit",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"name": name, "icon": icon, "target": target, "color": color}
			resp, err := newClient().R().SetBody(payload).Post("/api/habits")
			return printResult(resp, err)
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Habit name (required)")
	createCmd.Flags().StringVarP(&icon, "icon", "i", "", "Icon name (required)")
	createCmd.Flags().StringVarP(&target, "target", "t", "", "Target, e.g. \"30 minutes\" (required)")
	createCmd.Flags().StringVarP(&color, "color", "c", "", "Color tag (required)")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("icon")
	_ = createCmd.MarkFlagRequired("target")
	_ = createCmd.MarkFlagRequired("color")
	habitsCmd.AddCommand(createCmd)

	// update
	var upd struct {
		name, icon, target, color string
		active                    bool
	}
	updateCmd := &cobra.Command{
		Use:   "update HABIT_ID",
		Short: "Update habit fields; only flags that are set are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{}
			if cmd.Flags().Changed("name") {
				payload["name"] = upd.name
			}
			if cmd.Flags().Changed("icon") {
				payload["icon"] = upd.icon
			}
			if cmd.Flags().Changed("target") {
				payload["target"] = upd.target
			}
			if cmd.Flags().Changed("color") {
				payload["color"] = upd.color
			}
			if cmd.Flags().Changed("active") {
				payload["isActive"] = upd.active
			}
			resp, err := newClient().R().SetBody(payload).Patch("/api/habits/" + args[0])
			return printResult(resp, err)
		},
	}
	updateCmd.Flags().StringVar(&upd.name, "name", "", "New name")
	updateCmd.Flags().StringVar(&upd.icon, "icon", "", "New icon")
	updateCmd.Flags().StringVar(&upd.target, "target", "", "New target")
	updateCmd.Flags().StringVar(&upd.color, "color", "", "New color")
	updateCmd.Flags().BoolVar(&upd.active, "active", true, "Active flag; --active=false soft-disables")
	habitsCmd.AddCommand(updateCmd)

	// toggle
	var completed bool
	toggleCmd := &cobra.Command{
		Use:   "toggle HABIT_ID DATE",
		Short: "Toggle a habit's completion for a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("/api/habit-entries/%s/%s", args[0], args[1])
			resp, err := newClient().R().
				SetBody(map[string]interface{}{"completed": completed}).
				Put(url)
			return printResult(resp, err)
		},
	}
	toggleCmd.Flags().BoolVarP(&completed, "completed", "c", true, "Completed flag")
	habitsCmd.AddCommand(toggleCmd)

	// entries
	entriesCmd := &cobra.Command{
		Use:   "entries DATE",
		Short: "List habit entries for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/habit-entries/" + args[0])
			return printResult(resp, err)
		},
	}
	habitsCmd.AddCommand(entriesCmd)

	rootCmd.AddCommand(habitsCmd)
}
