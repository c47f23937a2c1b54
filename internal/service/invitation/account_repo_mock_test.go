package invitation

import (
	"context"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetActiveByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	calls struct {
		GetActiveByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetActiveByID sync.RWMutex
}

func (mock *accountRepoMock) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetActiveByIDFunc == nil {
		panic("accountRepoMock.GetActiveByIDFunc: method is nil but accountRepo.GetActiveByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetActiveByID.Lock()
	mock.calls.GetActiveByID = append(mock.calls.GetActiveByID, callInfo)
	mock.lockGetActiveByID.Unlock()
	return mock.GetActiveByIDFunc(ctx, id)
}

func (mock *accountRepoMock) GetActiveByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetActiveByID.RLock()
	calls := mock.calls.GetActiveByID
	mock.lockGetActiveByID.RUnlock()
	return calls
}
