package planner

import (
	"strings"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// EventResult is a card from event search.
type EventResult struct {
	Title       string
	Venue       string
	Place       string
	Description string // overrides the venue/place summary when set
	Location    string // overrides venue and place when set
	Date        string
	Time        string
	Price       string
	URL         string
	ImageURL    string
}

func (EventResult) ItemType() domain.ItemType { return domain.ItemTypeEvent }

func (e EventResult) Normalize() (domain.NewItem, error) {
	description := e.Description
	if strings.TrimSpace(description) == "" {
		description = labelled("Venue", e.Venue, "Place", e.Place)
	}
	return build(e.ItemType(), itemFields{
		title:       e.Title,
		description: description,
		location:    firstNonBlank(e.Location, e.Venue, e.Place),
		date:        e.Date,
		time:        e.Time,
		price:       e.Price,
		url:         e.URL,
		imageURL:    e.ImageURL,
	})
}

// HotelResult is a card from hotel search. The item is dated at check-in.
type HotelResult struct {
	Name        string
	Address     string
	Description string
	CheckInDate string
	CheckInTime string
	Price       string
	URL         string
	ImageURL    string
}

func (HotelResult) ItemType() domain.ItemType { return domain.ItemTypeHotel }

func (h HotelResult) Normalize() (domain.NewItem, error) {
	return build(h.ItemType(), itemFields{
		title:       h.Name,
		description: h.Description,
		location:    h.Address,
		date:        h.CheckInDate,
		time:        h.CheckInTime,
		price:       h.Price,
		url:         h.URL,
		imageURL:    h.ImageURL,
	})
}

// FlightResult is a card from flight search. Title falls back to
// "ORIGIN → DESTINATION" when empty.
type FlightResult struct {
	Title         string
	Origin        string
	Destination   string
	Airline       string
	FlightNumber  string
	Description   string
	Location      string // overrides "ORIGIN to DESTINATION" when set
	DepartureDate string
	DepartureTime string
	Price         string
	URL           string
	ImageURL      string
}

func (FlightResult) ItemType() domain.ItemType { return domain.ItemTypeFlight }

func (f FlightResult) Normalize() (domain.NewItem, error) {
	origin := strings.ToUpper(strings.TrimSpace(f.Origin))
	dest := strings.ToUpper(strings.TrimSpace(f.Destination))

	title := f.Title
	if strings.TrimSpace(title) == "" && origin != "" && dest != "" {
		title = origin + " → " + dest
	}
	description := f.Description
	if strings.TrimSpace(description) == "" {
		description = labelled("Airline", f.Airline, "Flight", f.FlightNumber)
	}
	location := f.Location
	if strings.TrimSpace(location) == "" && origin != "" && dest != "" {
		location = origin + " to " + dest
	}

	return build(f.ItemType(), itemFields{
		title:       title,
		description: description,
		location:    location,
		date:        f.DepartureDate,
		time:        f.DepartureTime,
		price:       f.Price,
		url:         f.URL,
		imageURL:    f.ImageURL,
	})
}

type itemFields struct {
	title, description, location string
	date, time, price            string
	url, imageURL                string
}

// build produces the item shape shared by all variants. Only the date is
// checked here; everything else is validated when the item is appended.
func build(t domain.ItemType, f itemFields) (domain.NewItem, error) {
	item := domain.NewItem{
		ItemType:    t,
		Title:       f.title,
		Description: optional(f.description),
		Location:    optional(f.location),
		URL:         optional(f.url),
		ImageURL:    optional(f.imageURL),
		Time:        optional(f.time),
		Status:      domain.ItemStatusPlanned,
	}
	if s := strings.TrimSpace(f.date); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return domain.NewItem{}, domain.NewValidationError("date", "expected YYYY-MM-DD")
		}
		item.Date = &d
	}
	if price, ok := NormalizePrice(f.price); ok {
		item.Price = price
	}
	return item, nil
}

// labelled renders "Label: value" pairs, skipping blank values.
func labelled(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if v := strings.TrimSpace(pairs[i+1]); v != "" {
			parts = append(parts, pairs[i]+": "+v)
		}
	}
	return strings.Join(parts, ", ")
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
