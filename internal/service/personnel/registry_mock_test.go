package personnel

import (
	"context"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"sync"
)

var _ registry = &registryMock{}

type registryMock struct {
	LookupFunc func(ctx context.Context, personnelID string) (domain.PersonnelRecord, bool, error)

	calls struct {
		Lookup []struct {
			Ctx         context.Context
			PersonnelID string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *registryMock) Lookup(ctx context.Context, personnelID string) (domain.PersonnelRecord, bool, error) {
	if mock.LookupFunc == nil {
		panic("registryMock.LookupFunc: method is nil but registry.Lookup was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PersonnelID string
	}{Ctx: ctx, PersonnelID: personnelID}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, personnelID)
}

func (mock *registryMock) LookupCalls() []struct {
	Ctx         context.Context
	PersonnelID string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
