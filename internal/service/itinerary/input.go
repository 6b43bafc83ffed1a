package itinerary

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxPlaceLen       = 300
	maxURLLen         = 2048
	maxItemStatusLen  = 50
)

// CreateItineraryInput holds the parameters for creating an itinerary.
type CreateItineraryInput struct {
	Title       string
	Description *string
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
}

// Validate checks all fields and collects all errors.
func (i CreateItineraryInput) Validate() error {
	var errs []domain.FieldError

	errs = checkTitle(errs, "title", i.Title)
	errs = checkLen(errs, "description", i.Description, maxDescriptionLen)
	errs = checkLen(errs, "destination", i.Destination, maxPlaceLen)
	errs = checkAmount(errs, "budget", i.Budget)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItineraryInput holds the parameters for a partial itinerary update.
// Immutable lists fields the caller tried to set that can never change
// (id, owner, creation time); any entry rejects the whole update.
type UpdateItineraryInput struct {
	ItineraryID uuid.UUID
	Title       *string
	Description *string // nil = don't change; ptr("") = clear
	Destination *string // nil = don't change; ptr("") = clear
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Status      *domain.ItineraryStatus

	ClearStartDate bool
	ClearEndDate   bool
	ClearBudget    bool

	Immutable []string
}

// Validate checks all fields and collects all errors.
func (i UpdateItineraryInput) Validate() error {
	var errs []domain.FieldError

	if i.ItineraryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "itinerary_id", Message: "required"})
	}
	for _, field := range i.Immutable {
		errs = append(errs, domain.FieldError{Field: field, Message: "cannot be changed"})
	}
	if i.params().IsEmpty() && len(i.Immutable) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = checkTitle(errs, "title", *i.Title)
	}
	errs = checkLen(errs, "description", i.Description, maxDescriptionLen)
	errs = checkLen(errs, "destination", i.Destination, maxPlaceLen)
	errs = checkAmount(errs, "budget", i.Budget)
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", *i.Status)})
	}
	if i.ClearStartDate && i.StartDate != nil {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "cannot set and clear at once"})
	}
	if i.ClearEndDate && i.EndDate != nil {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "cannot set and clear at once"})
	}
	if i.ClearBudget && i.Budget != nil {
		errs = append(errs, domain.FieldError{Field: "budget", Message: "cannot set and clear at once"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// params converts the input to repository update params, normalizing text.
func (i UpdateItineraryInput) params() domain.ItineraryUpdateParams {
	p := domain.ItineraryUpdateParams{
		StartDate:      i.StartDate,
		EndDate:        i.EndDate,
		Budget:         i.Budget,
		Status:         i.Status,
		ClearStartDate: i.ClearStartDate,
		ClearEndDate:   i.ClearEndDate,
		ClearBudget:    i.ClearBudget,
	}
	if i.Title != nil {
		p.Title = ptr(domain.NormalizeTitle(*i.Title))
	}
	if i.Description != nil {
		p.Description = ptr(strings.TrimSpace(*i.Description))
	}
	if i.Destination != nil {
		p.Destination = ptr(strings.TrimSpace(*i.Destination))
	}
	return p
}

// AddItemInput holds the parameters for appending an item to an itinerary.
// Time accepts H:MM, HH:MM and HH:MM:SS.
type AddItemInput struct {
	ItineraryID uuid.UUID
	ItemType    domain.ItemType
	Title       string
	Description *string
	Location    *string
	URL         *string
	ImageURL    *string
	Date        *time.Time
	Time        *string
	Price       *float64
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItineraryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "itinerary_id", Message: "required"})
	}
	if !i.ItemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "item_type", Message: fmt.Sprintf("unrecognized item type %q", i.ItemType)})
	}
	errs = checkTitle(errs, "title", i.Title)
	errs = checkLen(errs, "description", i.Description, maxDescriptionLen)
	errs = checkLen(errs, "location", i.Location, maxPlaceLen)
	errs = checkURL(errs, "url", i.URL)
	errs = checkURL(errs, "image_url", i.ImageURL)
	if i.Time != nil && strings.TrimSpace(*i.Time) != "" {
		if _, err := domain.ParseTimeOfDay(*i.Time); err != nil {
			errs = append(errs, domain.FieldError{Field: "time", Message: "expected HH:MM"})
		}
	}
	errs = checkAmount(errs, "price", i.Price)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// newItem converts a validated input into the repository form.
func (i AddItemInput) newItem() domain.NewItem {
	item := domain.NewItem{
		ItemType:    i.ItemType,
		Title:       domain.NormalizeTitle(i.Title),
		Description: trimOrNil(i.Description),
		Location:    trimOrNil(i.Location),
		URL:         trimOrNil(i.URL),
		ImageURL:    trimOrNil(i.ImageURL),
		Date:        i.Date,
		Price:       i.Price,
		Status:      domain.ItemStatusPlanned,
	}
	if t := trimOrNil(i.Time); t != nil {
		normalized, _ := domain.ParseTimeOfDay(*t)
		item.Time = &normalized
	}
	return item
}

// UpdateItemStatusInput holds the parameters for changing an item's status.
type UpdateItemStatusInput struct {
	ItineraryID uuid.UUID
	ItemID      uuid.UUID
	Status      string
}

// Validate checks all fields and collects all errors.
func (i UpdateItemStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.ItineraryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "itinerary_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	status := strings.TrimSpace(i.Status)
	if status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	}
	if utf8.RuneCountInString(status) > maxItemStatusLen {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("max %d characters", maxItemStatusLen)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkTitle(errs []domain.FieldError, field, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxTitleLen)})
	}
	return errs
}

func checkLen(errs []domain.FieldError, field string, s *string, limit int) []domain.FieldError {
	if s != nil && utf8.RuneCountInString(strings.TrimSpace(*s)) > limit {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
	}
	return errs
}

func checkAmount(errs []domain.FieldError, field string, v *float64) []domain.FieldError {
	if v == nil {
		return errs
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return append(errs, domain.FieldError{Field: field, Message: "must be a number"})
	}
	if *v < 0 {
		return append(errs, domain.FieldError{Field: field, Message: "must not be negative"})
	}
	if !domain.AmountFits(*v) {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("must be less than %.0f", domain.MaxAmount)})
	}
	return errs
}

func checkURL(errs []domain.FieldError, field string, raw *string) []domain.FieldError {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return errs
	}
	s := strings.TrimSpace(*raw)
	if len(s) > maxURLLen {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxURLLen)})
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return append(errs, domain.FieldError{Field: field, Message: "must be an absolute http(s) URL"})
	}
	return errs
}
