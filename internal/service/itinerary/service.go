// Package itinerary implements owner-scoped travel plan management: plans,
// their items, and the display order of those items.
package itinerary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

type itineraryRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, it *domain.Itinerary) (*domain.Itinerary, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error)
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.ItineraryUpdateParams) (*domain.Itinerary, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	AppendItem(ctx context.Context, ownerID, itineraryID uuid.UUID, item domain.NewItem) (*domain.Item, error)
	GetItem(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error)
	UpdateItemStatus(ctx context.Context, ownerID, itineraryID, itemID uuid.UUID, status string) (*domain.Item, error)
	DeleteItem(ctx context.Context, ownerID, itineraryID, itemID uuid.UUID) error
	CountItems(ctx context.Context, ownerID, itineraryID uuid.UUID) (int, error)

	LockOwner(ctx context.Context, ownerID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// viewCache holds ordered itinerary views. It is optional; the service
// behaves the same without one.
//
// Invalidate bumps a per-itinerary generation. Set only writes when the
// generation is still the one passed in, which the loader reads through
// Generation before it touches the repository.
type viewCache interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, bool, error)
	Generation(ctx context.Context, ownerID, id uuid.UUID) (int64, error)
	Set(ctx context.Context, it *domain.Itinerary, gen int64) (bool, error)
	Invalidate(ctx context.Context, ownerID, id uuid.UUID) error
}

// Default per-owner limits.
const (
	DefaultMaxItinerariesPerOwner = 200
	DefaultMaxItemsPerItinerary   = 500
)

// Limits caps how much a single owner can store.
type Limits struct {
	MaxItinerariesPerOwner int
	MaxItemsPerItinerary   int
}

func (l Limits) withDefaults() Limits {
	if l.MaxItinerariesPerOwner <= 0 {
		l.MaxItinerariesPerOwner = DefaultMaxItinerariesPerOwner
	}
	if l.MaxItemsPerItinerary <= 0 {
		l.MaxItemsPerItinerary = DefaultMaxItemsPerItinerary
	}
	return l
}

// Service provides itinerary management operations. Every method takes the
// owner explicitly; the service never reads identity from the context.
type Service struct {
	repo   itineraryRepo
	tx     txManager
	cache  viewCache
	limits Limits
	log    *slog.Logger

	loads singleflight.Group
}

// NewService creates a new Itinerary service without a view cache.
func NewService(
	log *slog.Logger,
	repo itineraryRepo,
	tx txManager,
	limits Limits,
) *Service {
	return &Service{
		repo:   repo,
		tx:     tx,
		limits: limits.withDefaults(),
		log:    log.With("service", "itinerary"),
	}
}

// WithViewCache enables read-through caching of GetItinerary results.
func (s *Service) WithViewCache(cache viewCache) *Service {
	s.cache = cache
	return s
}

// cachedView returns a cached ordered view. Cache failures are logged and
// treated as a miss.
func (s *Service) cachedView(ctx context.Context, ownerID, id uuid.UUID) (*domain.Itinerary, bool) {
	if s.cache == nil {
		return nil, false
	}
	it, ok, err := s.cache.Get(ctx, ownerID, id)
	if err != nil {
		s.log.WarnContext(ctx, "view cache get failed",
			slog.String("itinerary_id", id.String()),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	return it, ok
}

// viewGeneration reads the generation a load is based on. It reports false
// when there is no cache or the read failed; the load is then not stored.
func (s *Service) viewGeneration(ctx context.Context, ownerID, id uuid.UUID) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	gen, err := s.cache.Generation(ctx, ownerID, id)
	if err != nil {
		s.log.WarnContext(ctx, "view cache generation failed",
			slog.String("itinerary_id", id.String()),
			slog.String("error", err.Error()),
		)
		return 0, false
	}
	return gen, true
}

func (s *Service) storeView(ctx context.Context, it *domain.Itinerary, gen int64) {
	stored, err := s.cache.Set(ctx, it, gen)
	if err != nil {
		s.log.WarnContext(ctx, "view cache set failed",
			slog.String("itinerary_id", it.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if !stored {
		s.log.DebugContext(ctx, "view cache set skipped, itinerary changed during load",
			slog.String("itinerary_id", it.ID.String()),
		)
	}
}

// invalidate drops the cached view after a mutation and detaches any
// in-flight load, so later reads see the change. A cache failure only costs
// staleness until the TTL expires, so it is logged, not returned.
func (s *Service) invalidate(ctx context.Context, ownerID, id uuid.UUID) {
	s.loads.Forget(loadKey(ownerID, id))
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID, id); err != nil {
		s.log.WarnContext(ctx, "view cache invalidate failed",
			slog.String("itinerary_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}

func loadKey(ownerID, id uuid.UUID) string {
	return ownerID.String() + "/" + id.String()
}

func (s *Service) warnInvertedDates(ctx context.Context, it *domain.Itinerary) {
	if !it.HasInvertedDates() {
		return
	}
	s.log.WarnContext(ctx, "itinerary start date after end date",
		slog.String("user_id", it.UserID.String()),
		slog.String("itinerary_id", it.ID.String()),
		slog.String("start_date", domain.FormatDate(*it.StartDate)),
		slog.String("end_date", domain.FormatDate(*it.EndDate)),
	)
}

// withOrderedItems returns it with Items in display order.
func withOrderedItems(it *domain.Itinerary) *domain.Itinerary {
	it.Items = domain.OrderItems(it.Items)
	return it
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ptr returns a pointer to the given value.
func ptr[T any](v T) *T {
	return &v
}
