package itinerary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// ListItineraries returns all itineraries of ownerID, newest first, each
// with its items in display order.
func (s *Service) ListItineraries(ctx context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error) {
	its, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}
	if its == nil {
		return []*domain.Itinerary{}, nil
	}
	for _, it := range its {
		withOrderedItems(it)
	}
	return its, nil
}
