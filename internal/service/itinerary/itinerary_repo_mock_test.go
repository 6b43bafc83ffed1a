package itinerary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

var _ itineraryRepo = &itineraryRepoMock{}

type itineraryRepoMock struct {
	CreateFunc           func(ctx context.Context, ownerID uuid.UUID, it *domain.Itinerary) (*domain.Itinerary, error)
	GetByIDFunc          func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Itinerary, error)
	ListFunc             func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error)
	CountFunc            func(ctx context.Context, ownerID uuid.UUID) (int, error)
	UpdateFunc           func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.ItineraryUpdateParams) (*domain.Itinerary, error)
	DeleteFunc           func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	AppendItemFunc       func(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID, item domain.NewItem) (*domain.Item, error)
	GetItemFunc          func(ctx context.Context, ownerID uuid.UUID, itemID uuid.UUID) (*domain.Item, error)
	UpdateItemStatusFunc func(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID, itemID uuid.UUID, status string) (*domain.Item, error)
	DeleteItemFunc       func(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID, itemID uuid.UUID) error
	CountItemsFunc       func(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID) (int, error)
	LockOwnerFunc        func(ctx context.Context, ownerID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			It      *domain.Itinerary
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Count []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
			Params  domain.ItineraryUpdateParams
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		AppendItem []struct {
			Ctx         context.Context
			OwnerID     uuid.UUID
			ItineraryID uuid.UUID
			Item        domain.NewItem
		}
		GetItem []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ItemID  uuid.UUID
		}
		UpdateItemStatus []struct {
			Ctx         context.Context
			OwnerID     uuid.UUID
			ItineraryID uuid.UUID
			ItemID      uuid.UUID
			Status      string
		}
		DeleteItem []struct {
			Ctx         context.Context
			OwnerID     uuid.UUID
			ItineraryID uuid.UUID
			ItemID      uuid.UUID
		}
		CountItems []struct {
			Ctx         context.Context
			OwnerID     uuid.UUID
			ItineraryID uuid.UUID
		}
		LockOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockList             sync.RWMutex
	lockCount            sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockAppendItem       sync.RWMutex
	lockGetItem          sync.RWMutex
	lockUpdateItemStatus sync.RWMutex
	lockDeleteItem       sync.RWMutex
	lockCountItems       sync.RWMutex
	lockLockOwner        sync.RWMutex
}

func (mock *itineraryRepoMock) Create(ctx context.Context, ownerID uuid.UUID, it *domain.Itinerary) (*domain.Itinerary, error) {
	if mock.CreateFunc == nil {
		panic("itineraryRepoMock.CreateFunc: method is nil but itineraryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		It      *domain.Itinerary
	}{Ctx: ctx, OwnerID: ownerID, It: it}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, it)
}

func (mock *itineraryRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	It      *domain.Itinerary
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Itinerary, error) {
	if mock.GetByIDFunc == nil {
		panic("itineraryRepoMock.GetByIDFunc: method is nil but itineraryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *itineraryRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Itinerary, error) {
	if mock.ListFunc == nil {
		panic("itineraryRepoMock.ListFunc: method is nil but itineraryRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *itineraryRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("itineraryRepoMock.CountFunc: method is nil but itineraryRepo.Count was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, ownerID)
}

func (mock *itineraryRepoMock) CountCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.ItineraryUpdateParams) (*domain.Itinerary, error) {
	if mock.UpdateFunc == nil {
		panic("itineraryRepoMock.UpdateFunc: method is nil but itineraryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
		Params  domain.ItineraryUpdateParams
	}{Ctx: ctx, OwnerID: ownerID, Id: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

func (mock *itineraryRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
	Params  domain.ItineraryUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itineraryRepoMock.DeleteFunc: method is nil but itineraryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *itineraryRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) AppendItem(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID, item domain.NewItem) (*domain.Item, error) {
	if mock.AppendItemFunc == nil {
		panic("itineraryRepoMock.AppendItemFunc: method is nil but itineraryRepo.AppendItem was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OwnerID     uuid.UUID
		ItineraryID uuid.UUID
		Item        domain.NewItem
	}{Ctx: ctx, OwnerID: ownerID, ItineraryID: itineraryID, Item: item}
	mock.lockAppendItem.Lock()
	mock.calls.AppendItem = append(mock.calls.AppendItem, callInfo)
	mock.lockAppendItem.Unlock()
	return mock.AppendItemFunc(ctx, ownerID, itineraryID, item)
}

func (mock *itineraryRepoMock) AppendItemCalls() []struct {
	Ctx         context.Context
	OwnerID     uuid.UUID
	ItineraryID uuid.UUID
	Item        domain.NewItem
} {
	mock.lockAppendItem.RLock()
	calls := mock.calls.AppendItem
	mock.lockAppendItem.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) GetItem(ctx context.Context, ownerID uuid.UUID, itemID uuid.UUID) (*domain.Item, error) {
	if mock.GetItemFunc == nil {
		panic("itineraryRepoMock.GetItemFunc: method is nil but itineraryRepo.GetItem was just called")
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

func (mock *itineraryRepoMock) GetItemCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ItemID  uuid.UUID
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) UpdateItemStatus(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID, itemID uuid.UUID, status string) (*domain.Item, error) {
	if mock.UpdateItemStatusFunc == nil {
		panic("itineraryRepoMock.UpdateItemStatusFunc: method is nil but itineraryRepo.UpdateItemStatus was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OwnerID     uuid.UUID
		ItineraryID uuid.UUID
		ItemID      uuid.UUID
		Status      string
	}{Ctx: ctx, OwnerID: ownerID, ItineraryID: itineraryID, ItemID: itemID, Status: status}
	mock.lockUpdateItemStatus.Lock()
	mock.calls.UpdateItemStatus = append(mock.calls.UpdateItemStatus, callInfo)
	mock.lockUpdateItemStatus.Unlock()
	return mock.UpdateItemStatusFunc(ctx, ownerID, itineraryID, itemID, status)
}

func (mock *itineraryRepoMock) UpdateItemStatusCalls() []struct {
	Ctx         context.Context
	OwnerID     uuid.UUID
	ItineraryID uuid.UUID
	ItemID      uuid.UUID
	Status      string
} {
	mock.lockUpdateItemStatus.RLock()
	calls := mock.calls.UpdateItemStatus
	mock.lockUpdateItemStatus.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) DeleteItem(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID, itemID uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("itineraryRepoMock.DeleteItemFunc: method is nil but itineraryRepo.DeleteItem was just called")
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

func (mock *itineraryRepoMock) DeleteItemCalls() []struct {
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

func (mock *itineraryRepoMock) CountItems(ctx context.Context, ownerID uuid.UUID, itineraryID uuid.UUID) (int, error) {
	if mock.CountItemsFunc == nil {
		panic("itineraryRepoMock.CountItemsFunc: method is nil but itineraryRepo.CountItems was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		OwnerID     uuid.UUID
		ItineraryID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ItineraryID: itineraryID}
	mock.lockCountItems.Lock()
	mock.calls.CountItems = append(mock.calls.CountItems, callInfo)
	mock.lockCountItems.Unlock()
	return mock.CountItemsFunc(ctx, ownerID, itineraryID)
}

func (mock *itineraryRepoMock) CountItemsCalls() []struct {
	Ctx         context.Context
	OwnerID     uuid.UUID
	ItineraryID uuid.UUID
} {
	mock.lockCountItems.RLock()
	calls := mock.calls.CountItems
	mock.lockCountItems.RUnlock()
	return calls
}

func (mock *itineraryRepoMock) LockOwner(ctx context.Context, ownerID uuid.UUID) error {
	if mock.LockOwnerFunc == nil {
		panic("itineraryRepoMock.LockOwnerFunc: method is nil but itineraryRepo.LockOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockLockOwner.Lock()
	mock.calls.LockOwner = append(mock.calls.LockOwner, callInfo)
	mock.lockLockOwner.Unlock()
	return mock.LockOwnerFunc(ctx, ownerID)
}

func (mock *itineraryRepoMock) LockOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockLockOwner.RLock()
	calls := mock.calls.LockOwner
	mock.lockLockOwner.RUnlock()
	return calls
}
