package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// Payload is the loosely typed candidate accepted over the wire. Which
// fields matter depends on ItemType; Candidate picks the matching variant.
type Payload struct {
	ItemType     string `json:"item_type"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Venue        string `json:"venue"`
	Place        string `json:"place"`
	Address      string `json:"address"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Price        Price  `json:"price"`
	URL          string `json:"url"`
	ImageURL     string `json:"image_url"`
}

// Candidate returns the variant for p.ItemType. Only search result types
// are accepted; activities and notes are added manually.
func (p Payload) Candidate() (Candidate, error) {
	switch domain.ItemType(p.ItemType) {
	case domain.ItemTypeEvent:
		return EventResult{
			Title:       p.Title,
			Venue:       p.Venue,
			Place:       p.Place,
			Description: p.Description,
			Location:    p.Location,
			Date:        p.Date,
			Time:        p.Time,
			Price:       string(p.Price),
			URL:         p.URL,
			ImageURL:    p.ImageURL,
		}, nil
	case domain.ItemTypeHotel:
		return HotelResult{
			Name:        firstNonBlank(p.Title, p.Name),
			Address:     firstNonBlank(p.Location, p.Address),
			Description: p.Description,
			CheckInDate: p.Date,
			CheckInTime: p.Time,
			Price:       string(p.Price),
			URL:         p.URL,
			ImageURL:    p.ImageURL,
		}, nil
	case domain.ItemTypeFlight:
		return FlightResult{
			Title:         p.Title,
			Origin:        p.Origin,
			Destination:   p.Destination,
			Airline:       p.Airline,
			FlightNumber:  p.FlightNumber,
			Description:   p.Description,
			Location:      p.Location,
			DepartureDate: p.Date,
			DepartureTime: p.Time,
			Price:         string(p.Price),
			URL:           p.URL,
			ImageURL:      p.ImageURL,
		}, nil
	case "":
		return nil, domain.NewValidationError("item_type", "required")
	default:
		return nil, domain.NewValidationError("item_type",
			fmt.Sprintf("unsupported candidate type %q (want event, hotel or flight)", p.ItemType))
	}
}

// Price is an amount as sent by search providers: a JSON number, a
// formatted string like "$1,250.00", or null.
type Price string

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("price: %w", err)
		}
		*p = Price(s)
	default:
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return fmt.Errorf("price: expected number or string, got %s", data)
		}
		*p = Price(data)
	}
	return nil
}
