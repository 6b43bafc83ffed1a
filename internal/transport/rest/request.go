package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
	"github.com/heartmarshall/travelplan-backend/internal/service/itinerary"
)

const maxBodyBytes = 1 << 20

// immutableKeys are itinerary fields a PATCH may never touch, with the
// spellings clients are known to send.
var immutableKeys = []string{"id", "user_id", "userId", "owner_id", "ownerId", "created_at", "createdAt"}

type createItineraryRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Budget      *float64 `json:"budget"`
}

type addItemRequest struct {
	ItemType    string   `json:"item_type"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	URL         *string  `json:"url"`
	ImageURL    *string  `json:"image_url"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Price       *float64 `json:"price"`
}

type updateItemStatusRequest struct {
	Status string `json:"status"`
}

// decodeJSON reads a size-limited JSON body into v. Malformed bodies are
// validation errors on "body".
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// pathID parses a route id. A malformed id can never match a record, so it
// is reported as not found.
func pathID(ps httprouter.Params, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ps.ByName(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %q: %w", name, ps.ByName(name), domain.ErrNotFound)
	}
	return id, nil
}

// dateField parses an optional date, collecting a field error on failure.
func dateField(errs []domain.FieldError, field string, s *string) (*time.Time, []domain.FieldError) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, errs
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil, append(errs, domain.FieldError{Field: field, Message: "expected YYYY-MM-DD"})
	}
	return &d, errs
}

func (req createItineraryRequest) toInput() (itinerary.CreateItineraryInput, error) {
	var errs []domain.FieldError
	start, errs := dateField(errs, "start_date", req.StartDate)
	end, errs := dateField(errs, "end_date", req.EndDate)
	if len(errs) > 0 {
		return itinerary.CreateItineraryInput{}, domain.NewValidationErrors(errs)
	}
	return itinerary.CreateItineraryInput{
		Title:       req.Title,
		Description: req.Description,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
	}, nil
}

func (req addItemRequest) toInput(itineraryID uuid.UUID) (itinerary.AddItemInput, error) {
	date, errs := dateField(nil, "date", req.Date)
	if len(errs) > 0 {
		return itinerary.AddItemInput{}, domain.NewValidationErrors(errs)
	}
	return itinerary.AddItemInput{
		ItineraryID: itineraryID,
		ItemType:    domain.ItemType(req.ItemType),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
		Date:        date,
		Time:        req.Time,
		Price:       req.Price,
	}, nil
}

// decodeItineraryPatch builds a partial update from a JSON object. Absent
// keys are left unchanged; null clears optional fields. Keys naming
// immutable fields are reported to the service, which rejects the update.
func decodeItineraryPatch(w http.ResponseWriter, r *http.Request, id uuid.UUID) (itinerary.UpdateItineraryInput, error) {
	var raw map[string]json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		return itinerary.UpdateItineraryInput{}, err
	}

	input := itinerary.UpdateItineraryInput{ItineraryID: id}
	var errs []domain.FieldError

	for _, key := range immutableKeys {
		if _, ok := raw[key]; ok {
			input.Immutable = append(input.Immutable, key)
		}
	}

	str := func(key string) (value *string, present, null bool) {
		msg, ok := raw[key]
		if !ok {
			return nil, false, false
		}
		if isNull(msg) {
			return nil, true, true
		}
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be a string"})
			return nil, true, false
		}
		return &s, true, false
	}

	if v, present, null := str("title"); present {
		if null {
			v = new(string)
		}
		input.Title = v
	}
	if v, present, null := str("description"); present {
		if null {
			v = new(string)
		}
		input.Description = v
	}
	if v, present, null := str("destination"); present {
		if null {
			v = new(string)
		}
		input.Destination = v
	}
	if v, present, null := str("start_date"); present {
		if null {
			input.ClearStartDate = true
		} else {
			input.StartDate, errs = dateField(errs, "start_date", v)
		}
	}
	if v, present, null := str("end_date"); present {
		if null {
			input.ClearEndDate = true
		} else {
			input.EndDate, errs = dateField(errs, "end_date", v)
		}
	}
	if v, present, null := str("status"); present {
		if null {
			errs = append(errs, domain.FieldError{Field: "status", Message: "cannot be cleared"})
		} else if v != nil {
			status := domain.ItineraryStatus(strings.TrimSpace(*v))
			input.Status = &status
		}
	}
	if msg, ok := raw["budget"]; ok {
		if isNull(msg) {
			input.ClearBudget = true
		} else {
			var b float64
			if err := json.Unmarshal(msg, &b); err != nil {
				errs = append(errs, domain.FieldError{Field: "budget", Message: "must be a number"})
			} else {
				input.Budget = &b
			}
		}
	}

	if len(errs) > 0 {
		return itinerary.UpdateItineraryInput{}, domain.NewValidationErrors(errs)
	}
	return input, nil
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}
