package itinerary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// viewLoadTimeout bounds a shared load, which no caller can cancel.
const viewLoadTimeout = 30 * time.Second

// GetItinerary returns the owner's itinerary with its items in display order.
func (s *Service) GetItinerary(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("itinerary_id", "required")
	}

	if cached, ok := s.cachedView(ctx, ownerID, id); ok {
		return cached, nil
	}

	// Concurrent misses for the same itinerary share one load. The load is
	// detached from any single caller's cancellation; each caller still
	// stops waiting when its own context ends.
	detached := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(loadKey(ownerID, id), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(detached, viewLoadTimeout)
		defer cancel()

		gen, versioned := s.viewGeneration(loadCtx, ownerID, id)
		it, err := s.repo.GetByID(loadCtx, ownerID, id)
		if err != nil {
			return nil, err
		}
		it = withOrderedItems(it)
		if versioned {
			s.storeView(loadCtx, it, gen)
		}
		return it, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("get itinerary: %w", res.Err)
		}
		return res.Val.(*domain.Itinerary), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("get itinerary: %w", ctx.Err())
	}
}

// DayPlan returns the itinerary together with its ordered items grouped
// into consecutive days.
func (s *Service) DayPlan(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, []domain.DayPlan, error) {
	it, err := s.GetItinerary(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}
	return it, domain.GroupByDay(it.Items), nil
}
