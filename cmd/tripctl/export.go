package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
	"github.com/heartmarshall/travelplan-backend/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <ics|pdf> <owner-id> <itinerary-id>",
	Short: "Write an itinerary as an iCalendar file or a printable PDF",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		if format != "ics" && format != "pdf" {
			return fmt.Errorf("unknown export format %q: expected ics or pdf", format)
		}
		ownerID, id, err := parseIDs(args[1], args[2])
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

		var buf bytes.Buffer
		if err := render(&buf, format, it, days, e.cfg.Export.ProductID, e.cfg.Export.ShareURL(it.ID.String())); err != nil {
			return err
		}

		if exportOut == "" || exportOut == "-" {
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(exportOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", exportOut, buf.Len())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func render(w io.Writer, format string, it *domain.Itinerary, days []domain.DayPlan, productID, shareURL string) error {
	if format == "pdf" {
		return export.PDF(w, it, days, shareURL)
	}
	body, err := export.Calendar(it, productID)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, body)
	return err
}
