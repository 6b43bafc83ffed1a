package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// CreateItinerary creates an empty draft itinerary for ownerID.
func (s *Service) CreateItinerary(ctx context.Context, ownerID uuid.UUID, input CreateItineraryInput) (*domain.Itinerary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The owner lock serializes concurrent creates so the count check holds
	// until commit.
	var created *domain.Itinerary
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.LockOwner(txCtx, ownerID); err != nil {
			return fmt.Errorf("lock owner: %w", err)
		}

		count, err := s.repo.Count(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("count itineraries: %w", err)
		}
		if count >= s.limits.MaxItinerariesPerOwner {
			return domain.NewValidationError("itineraries",
				fmt.Sprintf("limit reached (max %d)", s.limits.MaxItinerariesPerOwner))
		}

		created, err = s.repo.Create(txCtx, ownerID, &domain.Itinerary{
			Title:       domain.NormalizeTitle(input.Title),
			Description: trimOrNil(input.Description),
			Destination: trimOrNil(input.Destination),
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
			Budget:      input.Budget,
			Status:      domain.ItineraryStatusDraft,
		})
		if err != nil {
			return fmt.Errorf("create itinerary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if created.Items == nil {
		created.Items = []domain.Item{}
	}

	s.log.InfoContext(ctx, "itinerary created",
		slog.String("user_id", ownerID.String()),
		slog.String("itinerary_id", created.ID.String()),
		slog.String("title", created.Title),
	)
	s.warnInvertedDates(ctx, created)

	return created, nil
}
