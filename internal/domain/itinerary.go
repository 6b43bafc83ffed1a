package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MaxAmount is the exclusive upper bound of budgets and prices, which are
// stored as numeric(12,2).
const MaxAmount = 1e10

// AmountFits reports whether v, rounded to cents, is below MaxAmount.
func AmountFits(v float64) bool {
	return math.Round(v*100) < MaxAmount*100
}

// Itinerary is a user-owned travel plan. It exclusively owns its items:
// deleting the itinerary deletes every item.
type Itinerary struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Destination *string
	StartDate   *time.Time // date only, UTC midnight
	EndDate     *time.Time // date only, UTC midnight
	Budget      *float64
	Status      ItineraryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []Item
}

// HasInvertedDates reports whether both dates are set and the start date is
// after the end date. The range is advisory and never corrected.
func (it *Itinerary) HasInvertedDates() bool {
	return it.StartDate != nil && it.EndDate != nil && it.StartDate.After(*it.EndDate)
}

// Item is one planned unit inside an itinerary. It belongs to the same
// itinerary for its whole lifetime and is never reparented.
type Item struct {
	ID          uuid.UUID
	ItineraryID uuid.UUID
	ItemType    ItemType
	Title       string
	Description *string
	Location    *string
	URL         *string
	ImageURL    *string
	Date        *time.Time // date only, UTC midnight
	Time        *string    // HH:MM or HH:MM:SS, independent of Date
	Price       *float64
	Status      string
	OrderIndex  int
	CreatedAt   time.Time
}

// NewItem holds the caller-supplied fields of an item about to be appended.
// ID, ItineraryID, OrderIndex and CreatedAt are assigned by the repository.
type NewItem struct {
	ItemType    ItemType
	Title       string
	Description *string
	Location    *string
	URL         *string
	ImageURL    *string
	Date        *time.Time
	Time        *string
	Price       *float64
	Status      string
}

// ItineraryUpdateParams is a partial update. A nil pointer leaves the field
// unchanged; the Clear* flags set the column to NULL. ID, UserID and
// CreatedAt are deliberately absent.
type ItineraryUpdateParams struct {
	Title       *string
	Description *string // ptr("") = clear
	Destination *string // ptr("") = clear
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Status      *ItineraryStatus

	ClearStartDate bool
	ClearEndDate   bool
	ClearBudget    bool
}

// IsEmpty reports whether the params would change nothing.
func (p ItineraryUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Destination == nil &&
		p.StartDate == nil && p.EndDate == nil && p.Budget == nil && p.Status == nil &&
		!p.ClearStartDate && !p.ClearEndDate && !p.ClearBudget
}
