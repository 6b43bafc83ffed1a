package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// UpdateItinerary applies a partial update. Attempts to change immutable
// fields are rejected before anything is written.
func (s *Service) UpdateItinerary(ctx context.Context, ownerID uuid.UUID, input UpdateItineraryInput) (*domain.Itinerary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, ownerID, input.ItineraryID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update itinerary: %w", err)
	}
	updated = withOrderedItems(updated)

	s.invalidate(ctx, ownerID, input.ItineraryID)

	s.log.InfoContext(ctx, "itinerary updated",
		slog.String("user_id", ownerID.String()),
		slog.String("itinerary_id", input.ItineraryID.String()),
		slog.String("status", updated.Status.String()),
	)
	s.warnInvertedDates(ctx, updated)

	return updated, nil
}
