package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// AddItem appends an item to the owner's itinerary. The item's order index
// is the number of items stored before it. Nothing is persisted on error.
func (s *Service) AddItem(ctx context.Context, ownerID uuid.UUID, input AddItemInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	newItem := input.newItem()

	var item *domain.Item
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, countErr := s.repo.CountItems(txCtx, ownerID, input.ItineraryID)
		if countErr != nil {
			return fmt.Errorf("count items: %w", countErr)
		}
		if count >= s.limits.MaxItemsPerItinerary {
			return domain.NewValidationError("items",
				fmt.Sprintf("limit reached (max %d)", s.limits.MaxItemsPerItinerary))
		}

		var appendErr error
		item, appendErr = s.repo.AppendItem(txCtx, ownerID, input.ItineraryID, newItem)
		if appendErr != nil {
			return fmt.Errorf("append item: %w", appendErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, ownerID, input.ItineraryID)

	s.log.InfoContext(ctx, "itinerary item added",
		slog.String("user_id", ownerID.String()),
		slog.String("itinerary_id", input.ItineraryID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("item_type", item.ItemType.String()),
		slog.Int("order_index", item.OrderIndex),
	)

	return item, nil
}

// GetItem returns one item of the owner's itineraries.
func (s *Service) GetItem(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item_id", "required")
	}

	item, err := s.repo.GetItem(ctx, ownerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// UpdateItemStatus changes the free-form status of an item. Its position in
// the itinerary does not change.
func (s *Service) UpdateItemStatus(ctx context.Context, ownerID uuid.UUID, input UpdateItemStatusInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	item, err := s.repo.UpdateItemStatus(ctx, ownerID, input.ItineraryID, input.ItemID, status)
	if err != nil {
		return nil, fmt.Errorf("update item status: %w", err)
	}

	s.invalidate(ctx, ownerID, input.ItineraryID)

	s.log.InfoContext(ctx, "itinerary item status updated",
		slog.String("user_id", ownerID.String()),
		slog.String("itinerary_id", input.ItineraryID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.String("status", status),
	)

	return item, nil
}

// DeleteItem removes an item. Remaining items keep their order index.
// Deleting a missing item succeeds.
func (s *Service) DeleteItem(ctx context.Context, ownerID, itineraryID, itemID uuid.UUID) error {
	var errs []domain.FieldError
	if itineraryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "itinerary_id", Message: "required"})
	}
	if itemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if err := s.repo.DeleteItem(ctx, ownerID, itineraryID, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.invalidate(ctx, ownerID, itineraryID)

	s.log.InfoContext(ctx, "itinerary item deleted",
		slog.String("user_id", ownerID.String()),
		slog.String("itinerary_id", itineraryID.String()),
		slog.String("item_id", itemID.String()),
	)

	return nil
}
