package invitation

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ personnelResolver = &personnelResolverMock{}

type personnelResolverMock struct {
	ResolveFunc func(ctx context.Context, personnelID string) (uuid.UUID, bool, error)

	calls struct {
		Resolve []struct {
			Ctx         context.Context
			PersonnelID string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *personnelResolverMock) Resolve(ctx context.Context, personnelID string) (uuid.UUID, bool, error) {
	if mock.ResolveFunc == nil {
		panic("personnelResolverMock.ResolveFunc: method is nil but personnelResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PersonnelID string
	}{Ctx: ctx, PersonnelID: personnelID}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, personnelID)
}

func (mock *personnelResolverMock) ResolveCalls() []struct {
	Ctx         context.Context
	PersonnelID string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
