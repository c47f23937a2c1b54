package rest

import (
	"context"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/service/invitation"
	"github.com/google/uuid"
	"sync"
)

var _ invitationService = &invitationServiceMock{}

type invitationServiceMock struct {
	CanDelegateFunc     func(ctx context.Context, invitationID uuid.UUID) (domain.DelegationEligibility, error)
	DelegateFunc        func(ctx context.Context, input invitation.DelegateInput) (*invitation.DelegateResult, error)
	DelegationChainFunc func(ctx context.Context, invitationID uuid.UUID) (*invitation.ChainView, error)
	GenerateFunc        func(ctx context.Context, input invitation.GenerateInput) (*invitation.GenerateResult, error)
	ListByAgendaFunc    func(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error)
	ListMineFunc        func(ctx context.Context, input invitation.ListMineInput) (*invitation.ListResult, error)
	UpdateStatusFunc    func(ctx context.Context, input invitation.UpdateStatusInput) (*domain.Invitation, error)

	calls struct {
		CanDelegate []struct {
			Ctx          context.Context
			InvitationID uuid.UUID
		}
		Delegate []struct {
			Ctx   context.Context
			Input invitation.DelegateInput
		}
		DelegationChain []struct {
			Ctx          context.Context
			InvitationID uuid.UUID
		}
		Generate []struct {
			Ctx   context.Context
			Input invitation.GenerateInput
		}
		ListByAgenda []struct {
			Ctx      context.Context
			AgendaID uuid.UUID
		}
		ListMine []struct {
			Ctx   context.Context
			Input invitation.ListMineInput
		}
		UpdateStatus []struct {
			Ctx   context.Context
			Input invitation.UpdateStatusInput
		}
	}
	lockCanDelegate     sync.RWMutex
	lockDelegate        sync.RWMutex
	lockDelegationChain sync.RWMutex
	lockGenerate        sync.RWMutex
	lockListByAgenda    sync.RWMutex
	lockListMine        sync.RWMutex
	lockUpdateStatus    sync.RWMutex
}

func (mock *invitationServiceMock) CanDelegate(ctx context.Context, invitationID uuid.UUID) (domain.DelegationEligibility, error) {
	if mock.CanDelegateFunc == nil {
		panic("invitationServiceMock.CanDelegateFunc: method is nil but invitationService.CanDelegate was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		InvitationID uuid.UUID
	}{Ctx: ctx, InvitationID: invitationID}
	mock.lockCanDelegate.Lock()
	mock.calls.CanDelegate = append(mock.calls.CanDelegate, callInfo)
	mock.lockCanDelegate.Unlock()
	return mock.CanDelegateFunc(ctx, invitationID)
}

func (mock *invitationServiceMock) CanDelegateCalls() []struct {
	Ctx          context.Context
	InvitationID uuid.UUID
} {
	mock.lockCanDelegate.RLock()
	calls := mock.calls.CanDelegate
	mock.lockCanDelegate.RUnlock()
	return calls
}

func (mock *invitationServiceMock) Delegate(ctx context.Context, input invitation.DelegateInput) (*invitation.DelegateResult, error) {
	if mock.DelegateFunc == nil {
		panic("invitationServiceMock.DelegateFunc: method is nil but invitationService.Delegate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input invitation.DelegateInput
	}{Ctx: ctx, Input: input}
	mock.lockDelegate.Lock()
	mock.calls.Delegate = append(mock.calls.Delegate, callInfo)
	mock.lockDelegate.Unlock()
	return mock.DelegateFunc(ctx, input)
}

func (mock *invitationServiceMock) DelegateCalls() []struct {
	Ctx   context.Context
	Input invitation.DelegateInput
} {
	mock.lockDelegate.RLock()
	calls := mock.calls.Delegate
	mock.lockDelegate.RUnlock()
	return calls
}

func (mock *invitationServiceMock) DelegationChain(ctx context.Context, invitationID uuid.UUID) (*invitation.ChainView, error) {
	if mock.DelegationChainFunc == nil {
		panic("invitationServiceMock.DelegationChainFunc: method is nil but invitationService.DelegationChain was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		InvitationID uuid.UUID
	}{Ctx: ctx, InvitationID: invitationID}
	mock.lockDelegationChain.Lock()
	mock.calls.DelegationChain = append(mock.calls.DelegationChain, callInfo)
	mock.lockDelegationChain.Unlock()
	return mock.DelegationChainFunc(ctx, invitationID)
}

func (mock *invitationServiceMock) DelegationChainCalls() []struct {
	Ctx          context.Context
	InvitationID uuid.UUID
} {
	mock.lockDelegationChain.RLock()
	calls := mock.calls.DelegationChain
	mock.lockDelegationChain.RUnlock()
	return calls
}

func (mock *invitationServiceMock) Generate(ctx context.Context, input invitation.GenerateInput) (*invitation.GenerateResult, error) {
	if mock.GenerateFunc == nil {
		panic("invitationServiceMock.GenerateFunc: method is nil but invitationService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input invitation.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *invitationServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input invitation.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *invitationServiceMock) ListByAgenda(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error) {
	if mock.ListByAgendaFunc == nil {
		panic("invitationServiceMock.ListByAgendaFunc: method is nil but invitationService.ListByAgenda was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgendaID uuid.UUID
	}{Ctx: ctx, AgendaID: agendaID}
	mock.lockListByAgenda.Lock()
	mock.calls.ListByAgenda = append(mock.calls.ListByAgenda, callInfo)
	mock.lockListByAgenda.Unlock()
	return mock.ListByAgendaFunc(ctx, agendaID)
}

func (mock *invitationServiceMock) ListByAgendaCalls() []struct {
	Ctx      context.Context
	AgendaID uuid.UUID
} {
	mock.lockListByAgenda.RLock()
	calls := mock.calls.ListByAgenda
	mock.lockListByAgenda.RUnlock()
	return calls
}

func (mock *invitationServiceMock) ListMine(ctx context.Context, input invitation.ListMineInput) (*invitation.ListResult, error) {
	if mock.ListMineFunc == nil {
		panic("invitationServiceMock.ListMineFunc: method is nil but invitationService.ListMine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input invitation.ListMineInput
	}{Ctx: ctx, Input: input}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, input)
}

func (mock *invitationServiceMock) ListMineCalls() []struct {
	Ctx   context.Context
	Input invitation.ListMineInput
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *invitationServiceMock) UpdateStatus(ctx context.Context, input invitation.UpdateStatusInput) (*domain.Invitation, error) {
	if mock.UpdateStatusFunc == nil {
		panic("invitationServiceMock.UpdateStatusFunc: method is nil but invitationService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input invitation.UpdateStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, input)
}

func (mock *invitationServiceMock) UpdateStatusCalls() []struct {
	Ctx   context.Context
	Input invitation.UpdateStatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
