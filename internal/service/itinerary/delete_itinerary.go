package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// DeleteItinerary removes the itinerary and all of its items. Deleting a
// missing itinerary succeeds.
func (s *Service) DeleteItinerary(ctx context.Context, ownerID, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("itinerary_id", "required")
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete itinerary: %w", err)
	}

	s.invalidate(ctx, ownerID, id)

	s.log.InfoContext(ctx, "itinerary deleted",
		slog.String("user_id", ownerID.String()),
		slog.String("itinerary_id", id.String()),
	)

	return nil
}
