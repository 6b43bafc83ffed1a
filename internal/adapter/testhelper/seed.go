package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItinerary creates an empty draft itinerary owned by ownerID.
func SeedItinerary(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Itinerary {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	it := domain.Itinerary{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     "Trip " + uniqueSuffix(),
		Status:    domain.ItineraryStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     []domain.Item{},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO itineraries (id, user_id, title, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID, it.UserID, it.Title, string(it.Status), it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItinerary insert: %v", err)
	}

	return it
}

// SeedItem inserts an item with the given order index directly, bypassing
// the append path. Useful for building colliding or sparse order indexes.
func SeedItem(t *testing.T, pool *pgxpool.Pool, itineraryID uuid.UUID, title string, orderIndex int) domain.Item {
	t.Helper()
	ctx := context.Background()

	item := domain.Item{
		ID:          uuid.New(),
		ItineraryID: itineraryID,
		ItemType:    domain.ItemTypeActivity,
		Title:       title,
		Status:      domain.ItemStatusPlanned,
		OrderIndex:  orderIndex,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO itinerary_items (id, itinerary_id, item_type, title, status, order_index, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.ItineraryID, string(item.ItemType), item.Title, item.Status, item.OrderIndex, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}
