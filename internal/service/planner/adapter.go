// Package planner turns search results from the event, hotel and flight
// features into itinerary items.
package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
	"github.com/heartmarshall/travelplan-backend/internal/service/itinerary"
)

//go:generate moq -out item_adder_mock_test.go -pkg planner . itemAdder

type itemAdder interface {
	AddItem(ctx context.Context, ownerID uuid.UUID, input itinerary.AddItemInput) (*domain.Item, error)
}

// Candidate is a provider search result that can become an itinerary item.
type Candidate interface {
	ItemType() domain.ItemType
	Normalize() (domain.NewItem, error)
}

// Adapter appends candidates to itineraries.
type Adapter struct {
	items itemAdder
	log   *slog.Logger
}

// NewAdapter creates a new Adapter.
func NewAdapter(log *slog.Logger, items itemAdder) *Adapter {
	return &Adapter{
		items: items,
		log:   log.With("service", "planner"),
	}
}

// Add normalizes c and appends it to the owner's itinerary. Every call
// appends exactly once: the same candidate added twice yields two items.
// Errors from the itinerary service are returned unchanged.
func (a *Adapter) Add(ctx context.Context, ownerID, itineraryID uuid.UUID, c Candidate) (*domain.Item, error) {
	if c == nil {
		return nil, domain.NewValidationError("item_type", "required")
	}

	n, err := c.Normalize()
	if err != nil {
		return nil, err
	}

	item, err := a.items.AddItem(ctx, ownerID, itinerary.AddItemInput{
		ItineraryID: itineraryID,
		ItemType:    n.ItemType,
		Title:       n.Title,
		Description: n.Description,
		Location:    n.Location,
		URL:         n.URL,
		ImageURL:    n.ImageURL,
		Date:        n.Date,
		Time:        n.Time,
		Price:       n.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("add %s candidate: %w", n.ItemType, err)
	}

	a.log.DebugContext(ctx, "candidate added",
		slog.String("user_id", ownerID.String()),
		slog.String("itinerary_id", itineraryID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("item_type", item.ItemType.String()),
	)

	return item, nil
}
