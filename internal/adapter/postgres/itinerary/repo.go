// Package itinerary implements the itinerary repository using PostgreSQL.
// Every operation is scoped to the owner: rows of other owners behave as if
// they did not exist.
package itinerary

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/travelplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var itineraryColumns = []string{
	"id", "user_id", "title", "description", "destination",
	"start_date", "end_date", "budget", "status", "created_at", "updated_at",
}

var itemColumns = []string{
	"id", "itinerary_id", "item_type", "title", "description", "location", "url", "image_url",
	"item_date", "item_time", "price", "status", "order_index", "created_at",
}

// Repo provides itinerary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new itinerary repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an itinerary with all of its items.
// Items come back in storage order (order_index, created_at, id); display
// order is applied by the caller.
// Returns domain.ErrNotFound if the itinerary does not exist or belongs to another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select(itineraryColumns...).
		From("itineraries").
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get itinerary query: %w", err)
	}

	it, err := scanItinerary(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "itinerary", id)
	}

	items, err := loadItems(ctx, q, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	it.Items = items[id]

	return &it, nil
}

// List returns all itineraries of an owner, newest first, each with its items.
// Returns an empty slice (not nil) when the owner has no itineraries.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Select(itineraryColumns...).
		From("itineraries").
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list itineraries query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "itinerary", uuid.Nil)
	}
	defer rows.Close()

	result := make([]*domain.Itinerary, 0)
	for rows.Next() {
		it, scanErr := scanItinerary(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan itinerary: %w", scanErr)
		}
		result = append(result, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "itinerary", uuid.Nil)
	}

	if len(result) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(result))
	for i, it := range result {
		ids[i] = it.ID
	}
	items, err := loadItems(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for _, it := range result {
		it.Items = items[it.ID]
	}

	return result, nil
}

const countByOwnerSQL = `SELECT count(*) FROM itineraries WHERE user_id = $1`

// Count returns the number of itineraries owned by ownerID.
func (r *Repo) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countByOwnerSQL, ownerID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "itinerary", uuid.Nil)
	}

	return count, nil
}

const lockOwnerSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

// LockOwner takes a transaction-scoped advisory lock on ownerID, holding
// back other owner-wide checks such as the itinerary limit until commit.
// It must run inside RunInTx; otherwise it returns postgres.ErrNoTx.
func (r *Repo) LockOwner(ctx context.Context, ownerID uuid.UUID) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("lock owner %s: %w", ownerID, postgres.ErrNoTx)
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, lockOwnerSQL, ownerID); err != nil {
		return postgres.MapError(err, "owner", ownerID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new itinerary with a fresh id and returns the persisted row.
// The returned itinerary has an empty item list.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, it *domain.Itinerary) (*domain.Itinerary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	sql, args, err := psql.Insert("itineraries").
		Columns("id", "user_id", "title", "description", "destination", "start_date", "end_date", "budget", "status").
		Values(id, ownerID, it.Title, it.Description, it.Destination, it.StartDate, it.EndDate, it.Budget, string(it.Status)).
		Suffix("RETURNING " + strings.Join(itineraryColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create itinerary query: %w", err)
	}

	created, err := scanItinerary(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "itinerary", id)
	}
	created.Items = []domain.Item{}

	return &created, nil
}

// Update applies a partial update and refreshes updated_at. Fields not set in
// params keep their stored value; id, owner and created_at are never written.
// Returns domain.ErrNotFound if the itinerary does not exist or belongs to another owner.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.ItineraryUpdateParams) (*domain.Itinerary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ub := psql.Update("itineraries").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING " + strings.Join(itineraryColumns, ", "))

	if params.Title != nil {
		ub = ub.Set("title", *params.Title)
	}
	if params.Description != nil {
		ub = ub.Set("description", emptyToNil(*params.Description))
	}
	if params.Destination != nil {
		ub = ub.Set("destination", emptyToNil(*params.Destination))
	}
	switch {
	case params.ClearStartDate:
		ub = ub.Set("start_date", nil)
	case params.StartDate != nil:
		ub = ub.Set("start_date", *params.StartDate)
	}
	switch {
	case params.ClearEndDate:
		ub = ub.Set("end_date", nil)
	case params.EndDate != nil:
		ub = ub.Set("end_date", *params.EndDate)
	}
	switch {
	case params.ClearBudget:
		ub = ub.Set("budget", nil)
	case params.Budget != nil:
		ub = ub.Set("budget", *params.Budget)
	}
	if params.Status != nil {
		ub = ub.Set("status", string(*params.Status))
	}

	sql, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update itinerary query: %w", err)
	}

	updated, err := scanItinerary(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "itinerary", id)
	}

	items, err := loadItems(ctx, q, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	updated.Items = items[id]

	return &updated, nil
}

// Delete removes an itinerary. ON DELETE CASCADE removes its items.
// Deleting a missing itinerary, or one of another owner, is not an error.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.Delete("itineraries").
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete itinerary query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "itinerary", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItinerary(row pgx.Row) (domain.Itinerary, error) {
	var (
		it     domain.Itinerary
		status string
	)
	err := row.Scan(
		&it.ID, &it.UserID, &it.Title, &it.Description, &it.Destination,
		&it.StartDate, &it.EndDate, &it.Budget, &status, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return domain.Itinerary{}, err
	}
	it.Status = domain.ItineraryStatus(status)
	it.Items = []domain.Item{}
	return it, nil
}

func scanItem(row pgx.Row) (domain.Item, error) {
	var (
		item     domain.Item
		itemType string
	)
	err := row.Scan(
		&item.ID, &item.ItineraryID, &itemType, &item.Title, &item.Description, &item.Location,
		&item.URL, &item.ImageURL, &item.Date, &item.Time, &item.Price, &item.Status,
		&item.OrderIndex, &item.CreatedAt,
	)
	if err != nil {
		return domain.Item{}, err
	}
	item.ItemType = domain.ItemType(itemType)
	return item, nil
}

// loadItems fetches the items of the given itineraries grouped by itinerary id.
// Every requested id is present in the result, possibly with an empty slice.
func loadItems(ctx context.Context, q postgres.Querier, itineraryIDs []uuid.UUID) (map[uuid.UUID][]domain.Item, error) {
	sql, args, err := psql.Select(itemColumns...).
		From("itinerary_items").
		Where(squirrel.Eq{"itinerary_id": itineraryIDs}).
		OrderBy("itinerary_id", "order_index", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load items query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "itinerary_item", uuid.Nil)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]domain.Item, len(itineraryIDs))
	for _, id := range itineraryIDs {
		result[id] = []domain.Item{}
	}
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan itinerary item: %w", scanErr)
		}
		result[item.ItineraryID] = append(result[item.ItineraryID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "itinerary_item", uuid.Nil)
	}

	return result, nil
}

// emptyToNil maps "" to SQL NULL.
func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// qualified prefixes every column with alias.
func qualified(alias string, cols []string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return strings.Join(out, ", ")
}
