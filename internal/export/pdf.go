package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

const (
	qrSize     = 256 // px
	qrBoxMM    = 32.0
	lineHeight = 6.0
	dayLayout  = "Monday, 2 January 2006"
)

// PDF writes a printable day-by-day plan of it to w. days must be the
// itinerary's ordered items grouped by day. When shareURL is non-empty a QR
// code linking to it is printed in the header.
func PDF(w io.Writer, it *domain.Itinerary, days []domain.DayPlan, shareURL string) error {
	if it == nil {
		return errors.New("export pdf: nil itinerary")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(strings.ReplaceAll(s, "→", "->"))
	}

	pdf.SetTitle(it.Title, true)
	pdf.SetCreator("travelplan", false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	if shareURL != "" {
		png, err := qrcode.Encode(shareURL, qrcode.Medium, qrSize)
		if err != nil {
			return fmt.Errorf("export pdf: qr code: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("share", opts, bytes.NewReader(png))
		pageW, _ := pdf.GetPageSize()
		_, _, right, _ := pdf.GetMargins()
		pdf.ImageOptions("share", pageW-right-qrBoxMM, 10, qrBoxMM, qrBoxMM, false, opts, 0, shareURL)
	}

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, text(it.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	for _, line := range summaryLines(it) {
		pdf.Cell(0, lineHeight, text(line))
		pdf.Ln(lineHeight)
	}
	if it.Description != nil {
		pdf.Ln(2)
		pdf.MultiCell(0, 5, text(*it.Description), "", "L", false)
	}
	if shareURL != "" && pdf.GetY() < 10+qrBoxMM {
		pdf.SetY(10 + qrBoxMM)
	}
	pdf.Ln(4)

	if len(days) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, lineHeight, "No items planned yet.")
		pdf.Ln(lineHeight)
	}

	for _, day := range days {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(0, 8, text(dayHeading(day)), "", 1, "L", true, 0, "")
		pdf.Ln(1)

		for _, item := range day.Items {
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(18, lineHeight, clockOf(item), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, lineHeight, text(fmt.Sprintf("[%s] %s", item.ItemType, item.Title)), "", 1, "L", false, 0, "")

			pdf.SetFont("Arial", "", 10)
			for _, detail := range itemDetails(item) {
				pdf.SetX(pdf.GetX() + 18)
				pdf.MultiCell(0, 5, text(detail), "", "L", false)
			}
			pdf.Ln(2)
		}
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}

func summaryLines(it *domain.Itinerary) []string {
	lines := []string{"Status: " + it.Status.String()}
	if it.Destination != nil {
		lines = append(lines, "Destination: "+*it.Destination)
	}
	switch {
	case it.StartDate != nil && it.EndDate != nil:
		lines = append(lines, fmt.Sprintf("Dates: %s to %s", domain.FormatDate(*it.StartDate), domain.FormatDate(*it.EndDate)))
	case it.StartDate != nil:
		lines = append(lines, "From: "+domain.FormatDate(*it.StartDate))
	case it.EndDate != nil:
		lines = append(lines, "Until: "+domain.FormatDate(*it.EndDate))
	}
	if it.Budget != nil {
		lines = append(lines, "Budget: "+formatAmount(*it.Budget))
	}
	return lines
}

func dayHeading(day domain.DayPlan) string {
	if day.Date == nil {
		return "Unscheduled"
	}
	return day.Date.Format(dayLayout)
}

func clockOf(item domain.Item) string {
	if item.Time == nil {
		return ""
	}
	return *item.Time
}

func itemDetails(item domain.Item) []string {
	var out []string
	if item.Location != nil {
		out = append(out, *item.Location)
	}
	if item.Description != nil {
		out = append(out, *item.Description)
	}
	if item.Price != nil {
		out = append(out, "Price: "+formatAmount(*item.Price))
	}
	if item.URL != nil {
		out = append(out, *item.URL)
	}
	return out
}
