package invitation

import (
	"context"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ agendaRepo = &agendaRepoMock{}

type agendaRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Agenda, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *agendaRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agenda, error) {
	if mock.GetByIDFunc == nil {
		panic("agendaRepoMock.GetByIDFunc: method is nil but agendaRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *agendaRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
