// Package export renders itineraries into portable formats: iCalendar for
// calendar apps and a printable PDF day plan.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// DefaultProductID is the PRODID of exported calendars.
const DefaultProductID = "-//travelplan//itinerary//EN"

const (
	uidDomain      = "travelplan"
	floatingLayout = "20060102T150405"
	timedDuration  = time.Hour
)

// Calendar renders the itinerary as a VCALENDAR with one VEVENT per dated
// item, in display order. Items without a time become all-day events;
// timed items block one hour in floating local time. Undated items are
// skipped.
func Calendar(it *domain.Itinerary, productID string) (string, error) {
	if it == nil {
		return "", errors.New("export calendar: nil itinerary")
	}
	if productID == "" {
		productID = DefaultProductID
	}

	stamp := it.UpdatedAt.UTC()
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(it.Title)

	for _, item := range domain.OrderItems(it.Items) {
		if item.Date == nil {
			continue
		}

		event := cal.AddEvent(item.ID.String() + "@" + uidDomain)
		event.SetDtStampTime(stamp)
		event.SetSummary(fmt.Sprintf("[%s] %s", item.ItemType, item.Title))

		if item.Time == nil {
			day := item.Date.UTC()
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		} else {
			start, err := startOf(*item.Date, *item.Time)
			if err != nil {
				return "", fmt.Errorf("export calendar: item %s: %w", item.ID, err)
			}
			event.SetProperty(ical.ComponentPropertyDtStart, start.Format(floatingLayout))
			event.SetProperty(ical.ComponentPropertyDtEnd, start.Add(timedDuration).Format(floatingLayout))
		}

		if desc := describe(item); desc != "" {
			event.SetDescription(desc)
		}
		if item.Location != nil {
			event.SetLocation(*item.Location)
		}
		if item.URL != nil {
			event.SetURL(*item.URL)
		}
	}

	return cal.Serialize(), nil
}

// startOf combines a calendar date with an "HH:MM[:SS]" time of day.
func startOf(date time.Time, clock string) (time.Time, error) {
	normalized, err := domain.ParseTimeOfDay(clock)
	if err != nil {
		return time.Time{}, err
	}
	layout := "15:04"
	if len(normalized) > len(layout) {
		layout = "15:04:05"
	}
	tod, err := time.Parse(layout, normalized)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC), nil
}

func describe(item domain.Item) string {
	var lines []string
	if item.Description != nil {
		lines = append(lines, *item.Description)
	}
	if item.Price != nil {
		lines = append(lines, "Price: "+formatAmount(*item.Price))
	}
	if item.Status != "" && item.Status != domain.ItemStatusPlanned {
		lines = append(lines, "Status: "+item.Status)
	}
	return strings.Join(lines, "\n")
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
