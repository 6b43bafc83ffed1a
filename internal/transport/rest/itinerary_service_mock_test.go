package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
	"github.com/heartmarshall/travelplan-backend/internal/service/itinerary"
)

var _ itineraryService = &itineraryServiceMock{}

type itineraryServiceMock struct {
	CreateItineraryFunc  func(ctx context.Context, ownerID uuid.UUID, input itinerary.CreateItineraryInput) (*domain.Itinerary, error)
	GetItineraryFunc     func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Itinerary, error)
	ListItinerariesFunc  func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error)
	UpdateItineraryFunc  func(ctx context.Context, ownerID uuid.UUID, input itinerary.UpdateItineraryInput) (*domain.Itinerary, error)
	DeleteItineraryFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	DayPlanFunc          func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Itinerary, []domain.DayPlan, error)
	AddItemFunc          func(ctx context.Context, ownerID uuid.UUID, input itinerary.AddItemInput) (*domain.Item, error)
	GetItemFunc          func(ctx context.Context, ownerID uuid.UUID, itemID uuid.UUID) (*domain.Item, error)
	UpdateItemStatusFunc func(ctx context.Context, ownerID uuid.UUID, input itinerary.UpdateItemStatusInput) (*domain.Item, error)
	DeleteItemFunc       func(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID, itemID uuid.UUID) error

	calls struct {
		CreateItinerary []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Input   itinerary.CreateItineraryInput
		}
		GetItinerary []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		ListItineraries []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		UpdateItinerary []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Input   itinerary.UpdateItineraryInput
		}
		DeleteItinerary []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		DayPlan []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		AddItem []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Input   itinerary.AddItemInput
		}
		GetItem []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ItemID  uuid.UUID
		}
		UpdateItemStatus []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Input   itinerary.UpdateItemStatusInput
		}
		DeleteItem []struct {
			Ctx         context.Context
			OwnerID     uuid.UUID
			ItineraryID uuid.UUID
			ItemID      uuid.UUID
		}
	}
	lockCreateItinerary  sync.RWMutex
	lockGetItinerary     sync.RWMutex
	lockListItineraries  sync.RWMutex
	lockUpdateItinerary  sync.RWMutex
	lockDeleteItinerary  sync.RWMutex
	lockDayPlan          sync.RWMutex
	lockAddItem          sync.RWMutex
	lockGetItem          sync.RWMutex
	lockUpdateItemStatus sync.RWMutex
	lockDeleteItem       sync.RWMutex
}

func (mock *itineraryServiceMock) CreateItinerary(ctx context.Context, ownerID uuid.UUID, input itinerary.CreateItineraryInput) (*domain.Itinerary, error) {
	if mock.CreateItineraryFunc == nil {
		panic("itineraryServiceMock.CreateItineraryFunc: method is nil but itineraryService.CreateItinerary was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Input   itinerary.CreateItineraryInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockCreateItinerary.Lock()
	mock.calls.CreateItinerary = append(mock.calls.CreateItinerary, callInfo)
	mock.lockCreateItinerary.Unlock()
	return mock.CreateItineraryFunc(ctx, ownerID, input)
}

func (mock *itineraryServiceMock) CreateItineraryCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Input   itinerary.CreateItineraryInput
} {
	mock.lockCreateItinerary.RLock()
	calls := mock.calls.CreateItinerary
	mock.lockCreateItinerary.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) GetItinerary(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Itinerary, error) {
	if mock.GetItineraryFunc == nil {
		panic("itineraryServiceMock.GetItineraryFunc: method is nil but itineraryService.GetItinerary was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockGetItinerary.Lock()
	mock.calls.GetItinerary = append(mock.calls.GetItinerary, callInfo)
	mock.lockGetItinerary.Unlock()
	return mock.GetItineraryFunc(ctx, ownerID, id)
}

func (mock *itineraryServiceMock) GetItineraryCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockGetItinerary.RLock()
	calls := mock.calls.GetItinerary
	mock.lockGetItinerary.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) ListItineraries(ctx context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error) {
	if mock.ListItinerariesFunc == nil {
		panic("itineraryServiceMock.ListItinerariesFunc: method is nil but itineraryService.ListItineraries was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListItineraries.Lock()
	mock.calls.ListItineraries = append(mock.calls.ListItineraries, callInfo)
	mock.lockListItineraries.Unlock()
	return mock.ListItinerariesFunc(ctx, ownerID)
}

func (mock *itineraryServiceMock) ListItinerariesCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListItineraries.RLock()
	calls := mock.calls.ListItineraries
	mock.lockListItineraries.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) UpdateItinerary(ctx context.Context, ownerID uuid.UUID, input itinerary.UpdateItineraryInput) (*domain.Itinerary, error) {
	if mock.UpdateItineraryFunc == nil {
		panic("itineraryServiceMock.UpdateItineraryFunc: method is nil but itineraryService.UpdateItinerary was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Input   itinerary.UpdateItineraryInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockUpdateItinerary.Lock()
	mock.calls.UpdateItinerary = append(mock.calls.UpdateItinerary, callInfo)
	mock.lockUpdateItinerary.Unlock()
	return mock.UpdateItineraryFunc(ctx, ownerID, input)
}

func (mock *itineraryServiceMock) UpdateItineraryCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Input   itinerary.UpdateItineraryInput
} {
	mock.lockUpdateItinerary.RLock()
	calls := mock.calls.UpdateItinerary
	mock.lockUpdateItinerary.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) DeleteItinerary(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteItineraryFunc == nil {
		panic("itineraryServiceMock.DeleteItineraryFunc: method is nil but itineraryService.DeleteItinerary was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockDeleteItinerary.Lock()
	mock.calls.DeleteItinerary = append(mock.calls.DeleteItinerary, callInfo)
	mock.lockDeleteItinerary.Unlock()
	return mock.DeleteItineraryFunc(ctx, ownerID, id)
}

func (mock *itineraryServiceMock) DeleteItineraryCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockDeleteItinerary.RLock()
	calls := mock.calls.DeleteItinerary
	mock.lockDeleteItinerary.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) DayPlan(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Itinerary, []domain.DayPlan, error) {
	if mock.DayPlanFunc == nil {
		panic("itineraryServiceMock.DayPlanFunc: method is nil but itineraryService.DayPlan was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockDayPlan.Lock()
	mock.calls.DayPlan = append(mock.calls.DayPlan, callInfo)
	mock.lockDayPlan.Unlock()
	return mock.DayPlanFunc(ctx, ownerID, id)
}

func (mock *itineraryServiceMock) DayPlanCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockDayPlan.RLock()
	calls := mock.calls.DayPlan
	mock.lockDayPlan.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) AddItem(ctx context.Context, ownerID uuid.UUID, input itinerary.AddItemInput) (*domain.Item, error) {
	if mock.AddItemFunc == nil {
		panic("itineraryServiceMock.AddItemFunc: method is nil but itineraryService.AddItem was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Input   itinerary.AddItemInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, callInfo)
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, ownerID, input)
}

func (mock *itineraryServiceMock) AddItemCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Input   itinerary.AddItemInput
} {
	mock.lockAddItem.RLock()
	calls := mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) GetItem(ctx context.Context, ownerID uuid.UUID, itemID uuid.UUID) (*domain.Item, error) {
	if mock.GetItemFunc == nil {
		panic("itineraryServiceMock.GetItemFunc: method is nil but itineraryService.GetItem was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ItemID  uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ItemID: itemID}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, ownerID, itemID)
}

func (mock *itineraryServiceMock) GetItemCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ItemID  uuid.UUID
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) UpdateItemStatus(ctx context.Context, ownerID uuid.UUID, input itinerary.UpdateItemStatusInput) (*domain.Item, error) {
	if mock.UpdateItemStatusFunc == nil {
		panic("itineraryServiceMock.UpdateItemStatusFunc: method is nil but itineraryService.UpdateItemStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Input   itinerary.UpdateItemStatusInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockUpdateItemStatus.Lock()
	mock.calls.UpdateItemStatus = append(mock.calls.UpdateItemStatus, callInfo)
	mock.lockUpdateItemStatus.Unlock()
	return mock.UpdateItemStatusFunc(ctx, ownerID, input)
}

func (mock *itineraryServiceMock) UpdateItemStatusCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Input   itinerary.UpdateItemStatusInput
} {
	mock.lockUpdateItemStatus.RLock()
	calls := mock.calls.UpdateItemStatus
	mock.lockUpdateItemStatus.RUnlock()
	return calls
}

func (mock *itineraryServiceMock) DeleteItem(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID, itemID uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("itineraryServiceMock.DeleteItemFunc: method is nil but itineraryService.DeleteItem was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OwnerID     uuid.UUID
		ItineraryID uuid.UUID
		ItemID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ItineraryID: itineraryID, ItemID: itemID}
	mock.lockDeleteItem.Lock()
	mock.calls.DeleteItem = append(mock.calls.DeleteItem, callInfo)
	mock.lockDeleteItem.Unlock()
	return mock.DeleteItemFunc(ctx, ownerID, itineraryID, itemID)
}

func (mock *itineraryServiceMock) DeleteItemCalls() []struct {
	Ctx         context.Context
	OwnerID     uuid.UUID
	ItineraryID uuid.UUID
	ItemID      uuid.UUID
} {
	mock.lockDeleteItem.RLock()
	calls := mock.calls.DeleteItem
	mock.lockDeleteItem.RUnlock()
	return calls
}
