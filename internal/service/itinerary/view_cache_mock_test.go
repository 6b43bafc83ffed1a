package itinerary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

var _ viewCache = &viewCacheMock{}

type viewCacheMock struct {
	GetFunc        func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Itinerary, bool, error)
	GenerationFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (int64, error)
	SetFunc        func(ctx context.Context, it *domain.Itinerary, gen int64) (bool, error)
	InvalidateFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error

	calls struct {
		Get []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		Generation []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		Set []struct {
			Ctx context.Context
			It  *domain.Itinerary
			Gen int64
		}
		Invalidate []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
	}
	lockGet        sync.RWMutex
	lockGeneration sync.RWMutex
	lockSet        sync.RWMutex
	lockInvalidate sync.RWMutex
}

func (mock *viewCacheMock) Get(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Itinerary, bool, error) {
	if mock.GetFunc == nil {
		panic("viewCacheMock.GetFunc: method is nil but viewCache.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ownerID, id)
}

func (mock *viewCacheMock) GetCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *viewCacheMock) Generation(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (int64, error) {
	if mock.GenerationFunc == nil {
		panic("viewCacheMock.GenerationFunc: method is nil but viewCache.Generation was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockGeneration.Lock()
	mock.calls.Generation = append(mock.calls.Generation, callInfo)
	mock.lockGeneration.Unlock()
	return mock.GenerationFunc(ctx, ownerID, id)
}

func (mock *viewCacheMock) GenerationCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockGeneration.RLock()
	calls := mock.calls.Generation
	mock.lockGeneration.RUnlock()
	return calls
}

func (mock *viewCacheMock) Set(ctx context.Context, it *domain.Itinerary, gen int64) (bool, error) {
	if mock.SetFunc == nil {
		panic("viewCacheMock.SetFunc: method is nil but viewCache.Set was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  *domain.Itinerary
		Gen int64
	}{Ctx: ctx, It: it, Gen: gen}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, it, gen)
}

func (mock *viewCacheMock) SetCalls() []struct {
	Ctx context.Context
	It  *domain.Itinerary
	Gen int64
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *viewCacheMock) Invalidate(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.InvalidateFunc == nil {
		panic("viewCacheMock.InvalidateFunc: method is nil but viewCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx, ownerID, id)
}

func (mock *viewCacheMock) InvalidateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
