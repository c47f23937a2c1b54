package invitation

import (
	"context"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ invitationRepo = &invitationRepoMock{}

type invitationRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	InvitedUserIDsFunc   func(ctx context.Context, agendaID uuid.UUID) ([]uuid.UUID, error)
	ListByHolderFunc     func(ctx context.Context, f domain.InvitationFilter) ([]domain.Invitation, int, error)
	ListByAgendaFunc     func(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error)
	ListChainFunc        func(ctx context.Context, agendaID uuid.UUID, originalHolderID uuid.UUID) ([]domain.Invitation, error)
	LockAgendaFunc       func(ctx context.Context, agendaID uuid.UUID) error
	CreateRootFunc       func(ctx context.Context, inv domain.Invitation) (bool, error)
	CreateFunc           func(ctx context.Context, inv domain.Invitation) (*domain.Invitation, error)
	TransitionStatusFunc func(ctx context.Context, id uuid.UUID, holderID uuid.UUID, target domain.InvitationStatus, now time.Time) (*domain.Invitation, bool, error)
	MarkDelegatedFunc    func(ctx context.Context, id uuid.UUID, holderID uuid.UUID, t domain.DelegationTarget, now time.Time) (*domain.Invitation, bool, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		InvitedUserIDs []struct {
			Ctx      context.Context
			AgendaID uuid.UUID
		}
		ListByHolder []struct {
			Ctx context.Context
			F   domain.InvitationFilter
		}
		ListByAgenda []struct {
			Ctx      context.Context
			AgendaID uuid.UUID
		}
		ListChain []struct {
			Ctx              context.Context
			AgendaID         uuid.UUID
			OriginalHolderID uuid.UUID
		}
		LockAgenda []struct {
			Ctx      context.Context
			AgendaID uuid.UUID
		}
		CreateRoot []struct {
			Ctx context.Context
			Inv domain.Invitation
		}
		Create []struct {
			Ctx context.Context
			Inv domain.Invitation
		}
		TransitionStatus []struct {
			Ctx      context.Context
			Id       uuid.UUID
			HolderID uuid.UUID
			Target   domain.InvitationStatus
			Now      time.Time
		}
		MarkDelegated []struct {
			Ctx      context.Context
			Id       uuid.UUID
			HolderID uuid.UUID
			T        domain.DelegationTarget
			Now      time.Time
		}
	}
	lockGetByID          sync.RWMutex
	lockInvitedUserIDs   sync.RWMutex
	lockListByHolder     sync.RWMutex
	lockListByAgenda     sync.RWMutex
	lockListChain        sync.RWMutex
	lockLockAgenda       sync.RWMutex
	lockCreateRoot       sync.RWMutex
	lockCreate           sync.RWMutex
	lockTransitionStatus sync.RWMutex
	lockMarkDelegated    sync.RWMutex
}

func (mock *invitationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	if mock.GetByIDFunc == nil {
		panic("invitationRepoMock.GetByIDFunc: method is nil but invitationRepo.GetByID was just called")
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

func (mock *invitationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *invitationRepoMock) InvitedUserIDs(ctx context.Context, agendaID uuid.UUID) ([]uuid.UUID, error) {
	if mock.InvitedUserIDsFunc == nil {
		panic("invitationRepoMock.InvitedUserIDsFunc: method is nil but invitationRepo.InvitedUserIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgendaID uuid.UUID
	}{Ctx: ctx, AgendaID: agendaID}
	mock.lockInvitedUserIDs.Lock()
	mock.calls.InvitedUserIDs = append(mock.calls.InvitedUserIDs, callInfo)
	mock.lockInvitedUserIDs.Unlock()
	return mock.InvitedUserIDsFunc(ctx, agendaID)
}

func (mock *invitationRepoMock) InvitedUserIDsCalls() []struct {
	Ctx      context.Context
	AgendaID uuid.UUID
} {
	mock.lockInvitedUserIDs.RLock()
	calls := mock.calls.InvitedUserIDs
	mock.lockInvitedUserIDs.RUnlock()
	return calls
}

func (mock *invitationRepoMock) ListByHolder(ctx context.Context, f domain.InvitationFilter) ([]domain.Invitation, int, error) {
	if mock.ListByHolderFunc == nil {
		panic("invitationRepoMock.ListByHolderFunc: method is nil but invitationRepo.ListByHolder was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.InvitationFilter
	}{Ctx: ctx, F: f}
	mock.lockListByHolder.Lock()
	mock.calls.ListByHolder = append(mock.calls.ListByHolder, callInfo)
	mock.lockListByHolder.Unlock()
	return mock.ListByHolderFunc(ctx, f)
}

func (mock *invitationRepoMock) ListByHolderCalls() []struct {
	Ctx context.Context
	F   domain.InvitationFilter
} {
	mock.lockListByHolder.RLock()
	calls := mock.calls.ListByHolder
	mock.lockListByHolder.RUnlock()
	return calls
}

func (mock *invitationRepoMock) ListByAgenda(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error) {
	if mock.ListByAgendaFunc == nil {
		panic("invitationRepoMock.ListByAgendaFunc: method is nil but invitationRepo.ListByAgenda was just called")
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

func (mock *invitationRepoMock) ListByAgendaCalls() []struct {
	Ctx      context.Context
	AgendaID uuid.UUID
} {
	mock.lockListByAgenda.RLock()
	calls := mock.calls.ListByAgenda
	mock.lockListByAgenda.RUnlock()
	return calls
}

func (mock *invitationRepoMock) ListChain(ctx context.Context, agendaID uuid.UUID, originalHolderID uuid.UUID) ([]domain.Invitation, error) {
	if mock.ListChainFunc == nil {
		panic("invitationRepoMock.ListChainFunc: method is nil but invitationRepo.ListChain was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		AgendaID         uuid.UUID
		OriginalHolderID uuid.UUID
	}{Ctx: ctx, AgendaID: agendaID, OriginalHolderID: originalHolderID}
	mock.lockListChain.Lock()
	mock.calls.ListChain = append(mock.calls.ListChain, callInfo)
	mock.lockListChain.Unlock()
	return mock.ListChainFunc(ctx, agendaID, originalHolderID)
}

func (mock *invitationRepoMock) ListChainCalls() []struct {
	Ctx              context.Context
	AgendaID         uuid.UUID
	OriginalHolderID uuid.UUID
} {
	mock.lockListChain.RLock()
	calls := mock.calls.ListChain
	mock.lockListChain.RUnlock()
	return calls
}

func (mock *invitationRepoMock) LockAgenda(ctx context.Context, agendaID uuid.UUID) error {
	if mock.LockAgendaFunc == nil {
		panic("invitationRepoMock.LockAgendaFunc: method is nil but invitationRepo.LockAgenda was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AgendaID uuid.UUID
	}{Ctx: ctx, AgendaID: agendaID}
	mock.lockLockAgenda.Lock()
	mock.calls.LockAgenda = append(mock.calls.LockAgenda, callInfo)
	mock.lockLockAgenda.Unlock()
	return mock.LockAgendaFunc(ctx, agendaID)
}

func (mock *invitationRepoMock) LockAgendaCalls() []struct {
	Ctx      context.Context
	AgendaID uuid.UUID
} {
	mock.lockLockAgenda.RLock()
	calls := mock.calls.LockAgenda
	mock.lockLockAgenda.RUnlock()
	return calls
}

func (mock *invitationRepoMock) CreateRoot(ctx context.Context, inv domain.Invitation) (bool, error) {
	if mock.CreateRootFunc == nil {
		panic("invitationRepoMock.CreateRootFunc: method is nil but invitationRepo.CreateRoot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Inv domain.Invitation
	}{Ctx: ctx, Inv: inv}
	mock.lockCreateRoot.Lock()
	mock.calls.CreateRoot = append(mock.calls.CreateRoot, callInfo)
	mock.lockCreateRoot.Unlock()
	return mock.CreateRootFunc(ctx, inv)
}

func (mock *invitationRepoMock) CreateRootCalls() []struct {
	Ctx context.Context
	Inv domain.Invitation
} {
	mock.lockCreateRoot.RLock()
	calls := mock.calls.CreateRoot
	mock.lockCreateRoot.RUnlock()
	return calls
}

func (mock *invitationRepoMock) Create(ctx context.Context, inv domain.Invitation) (*domain.Invitation, error) {
	if mock.CreateFunc == nil {
		panic("invitationRepoMock.CreateFunc: method is nil but invitationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Inv domain.Invitation
	}{Ctx: ctx, Inv: inv}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, inv)
}

func (mock *invitationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Inv domain.Invitation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *invitationRepoMock) TransitionStatus(ctx context.Context, id uuid.UUID, holderID uuid.UUID, target domain.InvitationStatus, now time.Time) (*domain.Invitation, bool, error) {
	if mock.TransitionStatusFunc == nil {
		panic("invitationRepoMock.TransitionStatusFunc: method is nil but invitationRepo.TransitionStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		HolderID uuid.UUID
		Target   domain.InvitationStatus
		Now      time.Time
	}{Ctx: ctx, Id: id, HolderID: holderID, Target: target, Now: now}
	mock.lockTransitionStatus.Lock()
	mock.calls.TransitionStatus = append(mock.calls.TransitionStatus, callInfo)
	mock.lockTransitionStatus.Unlock()
	return mock.TransitionStatusFunc(ctx, id, holderID, target, now)
}

func (mock *invitationRepoMock) TransitionStatusCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	HolderID uuid.UUID
	Target   domain.InvitationStatus
	Now      time.Time
} {
	mock.lockTransitionStatus.RLock()
	calls := mock.calls.TransitionStatus
	mock.lockTransitionStatus.RUnlock()
	return calls
}

func (mock *invitationRepoMock) MarkDelegated(ctx context.Context, id uuid.UUID, holderID uuid.UUID, t domain.DelegationTarget, now time.Time) (*domain.Invitation, bool, error) {
	if mock.MarkDelegatedFunc == nil {
		panic("invitationRepoMock.MarkDelegatedFunc: method is nil but invitationRepo.MarkDelegated was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		HolderID uuid.UUID
		T        domain.DelegationTarget
		Now      time.Time
	}{Ctx: ctx, Id: id, HolderID: holderID, T: t, Now: now}
	mock.lockMarkDelegated.Lock()
	mock.calls.MarkDelegated = append(mock.calls.MarkDelegated, callInfo)
	mock.lockMarkDelegated.Unlock()
	return mock.MarkDelegatedFunc(ctx, id, holderID, t, now)
}

func (mock *invitationRepoMock) MarkDelegatedCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	HolderID uuid.UUID
	T        domain.DelegationTarget
	Now      time.Time
} {
	mock.lockMarkDelegated.RLock()
	calls := mock.calls.MarkDelegated
	mock.lockMarkDelegated.RUnlock()
	return calls
}
