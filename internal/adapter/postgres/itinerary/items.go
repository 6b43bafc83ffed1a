package itinerary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/travelplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Raw SQL for item operations
// ---------------------------------------------------------------------------

// appendItemSQL refreshes the parent's updated_at and inserts the item with
// order_index equal to the current item count, in one statement. No row is
// returned when the parent is missing or owned by someone else.
var appendItemSQL = `
WITH parent AS (
    UPDATE itineraries SET updated_at = now()
    WHERE id = $1 AND user_id = $2
    RETURNING id
)
INSERT INTO itinerary_items (
    id, itinerary_id, item_type, title, description, location, url, image_url,
    item_date, item_time, price, status, order_index
)
SELECT $3::uuid, parent.id, $4::text, $5::text, $6::text, $7::text, $8::text, $9::text,
       $10::date, $11::text, $12::numeric, $13::text,
       (SELECT count(*) FROM itinerary_items WHERE itinerary_id = parent.id)
FROM parent
RETURNING ` + strings.Join(itemColumns, ", ")

var getItemSQL = `
SELECT ` + qualified("i", itemColumns) + `
FROM itinerary_items i
JOIN itineraries p ON p.id = i.itinerary_id
WHERE i.id = $1 AND p.user_id = $2`

var updateItemStatusSQL = `
WITH updated AS (
    UPDATE itinerary_items SET status = $1
    WHERE id = $2
      AND itinerary_id IN (SELECT id FROM itineraries WHERE id = $3 AND user_id = $4)
    RETURNING ` + strings.Join(itemColumns, ", ") + `
), touched AS (
    UPDATE itineraries SET updated_at = now()
    WHERE id IN (SELECT itinerary_id FROM updated)
)
SELECT ` + strings.Join(itemColumns, ", ") + ` FROM updated`

const deleteItemSQL = `
WITH removed AS (
    DELETE FROM itinerary_items
    WHERE id = $1
      AND itinerary_id IN (SELECT id FROM itineraries WHERE id = $2 AND user_id = $3)
    RETURNING itinerary_id
)
UPDATE itineraries SET updated_at = now()
WHERE id IN (SELECT itinerary_id FROM removed)`

const countItemsSQL = `
SELECT count(i.id)
FROM itineraries p
LEFT JOIN itinerary_items i ON i.itinerary_id = p.id
WHERE p.id = $1 AND p.user_id = $2`

// ---------------------------------------------------------------------------
// Item operations
// ---------------------------------------------------------------------------

// AppendItem persists item as the last element of the itinerary: its
// order_index is the number of items already stored. The parent's
// updated_at is refreshed in the same statement.
// Returns domain.ErrNotFound if the itinerary does not exist or belongs to another owner.
func (r *Repo) AppendItem(ctx context.Context, ownerID, itineraryID uuid.UUID, item domain.NewItem) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	created, err := scanItem(q.QueryRow(ctx, appendItemSQL,
		itineraryID, ownerID,
		id, string(item.ItemType), item.Title, item.Description, item.Location, item.URL, item.ImageURL,
		item.Date, item.Time, item.Price, item.Status,
	))
	if err != nil {
		return nil, postgres.MapError(err, "itinerary", itineraryID)
	}

	return &created, nil
}

// GetItem returns a single item by id.
// Returns domain.ErrNotFound if the item does not exist or its itinerary belongs to another owner.
func (r *Repo) GetItem(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	item, err := scanItem(q.QueryRow(ctx, getItemSQL, itemID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "itinerary_item", itemID)
	}

	return &item, nil
}

// UpdateItemStatus sets the status of one item and refreshes the parent's
// updated_at. The item's order_index is left untouched.
// Returns domain.ErrNotFound if the item is not part of the owner's itinerary.
func (r *Repo) UpdateItemStatus(ctx context.Context, ownerID, itineraryID, itemID uuid.UUID, status string) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	item, err := scanItem(q.QueryRow(ctx, updateItemStatusSQL, status, itemID, itineraryID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "itinerary_item", itemID)
	}

	return &item, nil
}

// DeleteItem removes one item. Remaining items keep their order_index.
// Deleting a missing item is not an error; the parent's updated_at only
// changes when a row was actually removed.
func (r *Repo) DeleteItem(ctx context.Context, ownerID, itineraryID, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteItemSQL, itemID, itineraryID, ownerID); err != nil {
		return postgres.MapError(err, "itinerary_item", itemID)
	}

	return nil
}

// CountItems returns the number of items in the owner's itinerary.
// An itinerary that does not exist or belongs to someone else counts as zero.
func (r *Repo) CountItems(ctx context.Context, ownerID, itineraryID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countItemsSQL, itineraryID, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count itinerary items: %w", postgres.MapError(err, "itinerary", itineraryID))
	}

	return count, nil
}
