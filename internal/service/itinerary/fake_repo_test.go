package itinerary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// memRepo is an in-memory itineraryRepo with the storage semantics of the
// postgres repository: owner scoping, cascade delete, order index equal to
// the item count at append time.
type memRepo struct {
	mu    sync.Mutex
	its   map[uuid.UUID]*domain.Itinerary
	clock time.Time
}

var _ itineraryRepo = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		its:   make(map[uuid.UUID]*domain.Itinerary),
		clock: time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *memRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memRepo) owned(ownerID, id uuid.UUID) (*domain.Itinerary, bool) {
	it, ok := r.its[id]
	if !ok || it.UserID != ownerID {
		return nil, false
	}
	return it, true
}

func copyItinerary(it *domain.Itinerary) *domain.Itinerary {
	c := *it
	c.Items = append([]domain.Item{}, it.Items...)
	return &c
}

func (r *memRepo) Create(_ context.Context, ownerID uuid.UUID, it *domain.Itinerary) (*domain.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.tick()
	stored := *it
	stored.ID = uuid.New()
	stored.UserID = ownerID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.Items = []domain.Item{}
	r.its[stored.ID] = &stored
	return copyItinerary(&stored), nil
}

func (r *memRepo) GetByID(_ context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.owned(ownerID, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyItinerary(it), nil
}

func (r *memRepo) List(_ context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*domain.Itinerary{}
	for _, it := range r.its {
		if it.UserID == ownerID {
			out = append(out, copyItinerary(it))
		}
	}
	return out, nil
}

func (r *memRepo) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	its, _ := r.List(ctx, ownerID)
	return len(its), nil
}

func (r *memRepo) Update(_ context.Context, ownerID, id uuid.UUID, p domain.ItineraryUpdateParams) (*domain.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.owned(ownerID, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Status != nil {
		it.Status = *p.Status
	}
	if p.StartDate != nil {
		it.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		it.EndDate = p.EndDate
	}
	it.UpdatedAt = r.tick()
	return copyItinerary(it), nil
}

func (r *memRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.owned(ownerID, id); ok {
		delete(r.its, id)
	}
	return nil
}

func (r *memRepo) AppendItem(_ context.Context, ownerID, itineraryID uuid.UUID, n domain.NewItem) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.owned(ownerID, itineraryID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	now := r.tick()
	item := domain.Item{
		ID:          uuid.New(),
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
		Status:      n.Status,
		OrderIndex:  len(it.Items),
		CreatedAt:   now,
	}
	it.Items = append(it.Items, item)
	it.UpdatedAt = now
	return &item, nil
}

func (r *memRepo) GetItem(_ context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.its {
		if it.UserID != ownerID {
			continue
		}
		for _, item := range it.Items {
			if item.ID == itemID {
				found := item
				return &found, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) UpdateItemStatus(_ context.Context, ownerID, itineraryID, itemID uuid.UUID, status string) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.owned(ownerID, itineraryID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	for i := range it.Items {
		if it.Items[i].ID == itemID {
			it.Items[i].Status = status
			it.UpdatedAt = r.tick()
			found := it.Items[i]
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) DeleteItem(_ context.Context, ownerID, itineraryID, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.owned(ownerID, itineraryID)
	if !ok {
		return nil
	}
	for i := range it.Items {
		if it.Items[i].ID == itemID {
			it.Items = append(it.Items[:i], it.Items[i+1:]...)
			it.UpdatedAt = r.tick()
			return nil
		}
	}
	return nil
}

func (r *memRepo) CountItems(_ context.Context, ownerID, itineraryID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.owned(ownerID, itineraryID)
	if !ok {
		return 0, nil
	}
	return len(it.Items), nil
}

// LockOwner is a no-op; memRepo serializes every call on its mutex.
func (r *memRepo) LockOwner(context.Context, uuid.UUID) error { return nil }
