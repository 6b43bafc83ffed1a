package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <owner-id> <itinerary-id>",
	Short: "Print an itinerary in display order, grouped by day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID, id, err := parseIDs(args[0], args[1])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		it, days, err := e.svc.DayPlan(cmd.Context(), ownerID, id)
		if err != nil {
			return err
		}
		return printDayPlan(cmd.OutOrStdout(), it, days)
	},
}

func printDayPlan(w io.Writer, it *domain.Itinerary, days []domain.DayPlan) error {
	fmt.Fprintf(w, "%s [%s]\n", it.Title, it.Status)
	if it.Destination != nil {
		fmt.Fprintf(w, "Destination: %s\n", *it.Destination)
	}
	if it.StartDate != nil || it.EndDate != nil {
		fmt.Fprintf(w, "Dates: %s .. %s\n", dateOrDash(it.StartDate), dateOrDash(it.EndDate))
	}
	if len(days) == 0 {
		fmt.Fprintln(w, "\nNo items planned yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, day := range days {
		heading := "Unscheduled"
		if day.Date != nil {
			heading = day.Date.Format("Monday, 2 January 2006")
		}
		fmt.Fprintf(tw, "\n%s\n", heading)
		for _, item := range day.Items {
			at := "--:--"
			if item.Time != nil {
				at = *item.Time
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", at, item.ItemType, item.Title, item.Status)
		}
	}
	return tw.Flush()
}

func dateOrDash(d *time.Time) string {
	if d == nil {
		return "-"
	}
	return domain.FormatDate(*d)
}
