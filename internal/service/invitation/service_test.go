package invitation

//go:generate moq -out invitation_repo_mock_test.go -pkg invitation . invitationRepo
//go:generate moq -out agenda_repo_mock_test.go -pkg invitation . agendaRepo
//go:generate moq -out account_repo_mock_test.go -pkg invitation . accountRepo
//go:generate moq -out personnel_resolver_mock_test.go -pkg invitation . personnelResolver
//go:generate moq -out tx_manager_mock_test.go -pkg invitation . txManager

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/config"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"github.com/bimasakti77/agenda-pimpinan-sub000/pkg/ctxutil"
)

var testCfg = config.InvitationConfig{
	DefaultPageSize: 20,
	MaxPageSize:     100,
	MaxParticipants: 50,
}

func userCtx(userID uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), userID)
	return ctxutil.WithUserRole(ctx, string(domain.UserRoleUser))
}

func adminCtx(userID uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), userID)
	return ctxutil.WithUserRole(ctx, string(domain.UserRoleAdmin))
}

func ptr[T any](v T) *T { return &v }

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// clock returns a controllable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// deps bundles the collaborators of a test Service.
type deps struct {
	invitations *invitationRepoMock
	agendas     *agendaRepoMock
	accounts    *accountRepoMock
	resolver    *personnelResolverMock
	tx          *txManagerMock
	clock       *clock
}

func newTestService(t *testing.T, d deps) *Service {
	t.Helper()
	if d.invitations == nil {
		d.invitations = &invitationRepoMock{}
	}
	if d.agendas == nil {
		d.agendas = &agendaRepoMock{}
	}
	if d.accounts == nil {
		d.accounts = &accountRepoMock{}
	}
	if d.resolver == nil {
		d.resolver = &personnelResolverMock{}
	}
	if d.tx == nil {
		d.tx = defaultTxMock()
	}
	svc := NewService(slog.Default(), d.invitations, d.agendas, d.accounts, d.resolver, d.tx, testCfg)
	if d.clock != nil {
		svc.now = d.clock.Now
	}
	return svc
}

func agendaOwnedBy(ownerID uuid.UUID) (*domain.Agenda, *agendaRepoMock) {
	agenda := &domain.Agenda{ID: uuid.New(), OwnerUserID: ownerID, Title: "Rapat pimpinan"}
	return agenda, &agendaRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Agenda, error) {
			if id != agenda.ID {
				return nil, domain.ErrNotFound
			}
			return agenda, nil
		},
	}
}

// activeAccounts treats every id in ids as an active account.
func activeAccounts(ids ...uuid.UUID) *accountRepoMock {
	return &accountRepoMock{
		GetActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
			if !slices.Contains(ids, id) {
				return nil, domain.ErrNotFound
			}
			return &domain.Account{ID: id, Role: domain.UserRoleUser, IsActive: true}, nil
		},
	}
}

// ---------------------------------------------------------------------------
// memStore: in-memory invitations table with the same guards as PostgreSQL
// ---------------------------------------------------------------------------

type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Invitation
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[uuid.UUID]domain.Invitation)}
}

func (m *memStore) put(inv domain.Invitation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[inv.ID] = inv
}

func (m *memStore) get(id uuid.UUID) (domain.Invitation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.rows[id]
	return inv, ok
}

func (m *memStore) byAgenda(agendaID uuid.UUID) []domain.Invitation {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Invitation
	for _, inv := range m.rows {
		if inv.AgendaID == agendaID {
			out = append(out, inv)
		}
	}
	slices.SortFunc(out, func(a, b domain.Invitation) int {
		return a.DelegationLevel - b.DelegationLevel
	})
	return out
}

// activeHolderLocked reports whether holderID already has an active
// invitation on agendaID. m.mu must be held.
func (m *memStore) activeHolderLocked(agendaID, holderID uuid.UUID) bool {
	for _, inv := range m.rows {
		if inv.AgendaID == agendaID && inv.HolderUserID == holderID && inv.DelegatedToDisplayName == nil {
			return true
		}
	}
	return false
}

// tx serializes transactions and restores the previous rows on error.
func (m *memStore) tx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			m.txMu.Lock()
			defer m.txMu.Unlock()

			m.mu.Lock()
			snapshot := maps.Clone(m.rows)
			m.mu.Unlock()

			if err := fn(ctx); err != nil {
				m.mu.Lock()
				m.rows = snapshot
				m.mu.Unlock()
				return err
			}
			return nil
		},
	}
}

func (m *memStore) repo() *invitationRepoMock {
	return &invitationRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
			inv, ok := m.get(id)
			if !ok {
				return nil, domain.ErrNotFound
			}
			return &inv, nil
		},
		InvitedUserIDsFunc: func(ctx context.Context, agendaID uuid.UUID) ([]uuid.UUID, error) {
			var ids []uuid.UUID
			for _, inv := range m.byAgenda(agendaID) {
				if inv.DelegatedToDisplayName == nil && !slices.Contains(ids, inv.HolderUserID) {
					ids = append(ids, inv.HolderUserID)
				}
				if inv.DelegationLevel == 0 && !slices.Contains(ids, inv.OriginalHolderUserID) {
					ids = append(ids, inv.OriginalHolderUserID)
				}
			}
			return ids, nil
		},
		ListByAgendaFunc: func(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error) {
			return m.byAgenda(agendaID), nil
		},
		ListChainFunc: func(ctx context.Context, agendaID, originalHolderID uuid.UUID) ([]domain.Invitation, error) {
			var out []domain.Invitation
			for _, inv := range m.byAgenda(agendaID) {
				if inv.OriginalHolderUserID == originalHolderID {
					out = append(out, inv)
				}
			}
			return out, nil
		},
		LockAgendaFunc: func(ctx context.Context, agendaID uuid.UUID) error {
			return nil
		},
		CreateRootFunc: func(ctx context.Context, inv domain.Invitation) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.activeHolderLocked(inv.AgendaID, inv.HolderUserID) {
				return false, nil
			}
			for _, r := range m.rows {
				if r.AgendaID == inv.AgendaID && r.DelegationLevel == 0 && r.OriginalHolderUserID == inv.OriginalHolderUserID {
					return false, nil
				}
			}
			m.rows[inv.ID] = inv
			return true, nil
		},
		CreateFunc: func(ctx context.Context, inv domain.Invitation) (*domain.Invitation, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.activeHolderLocked(inv.AgendaID, inv.HolderUserID) {
				return nil, domain.ErrAlreadyExists
			}
			m.rows[inv.ID] = inv
			return &inv, nil
		},
		TransitionStatusFunc: func(ctx context.Context, id, holderID uuid.UUID, target domain.InvitationStatus, now time.Time) (*domain.Invitation, bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			inv, ok := m.rows[id]
			if !ok || inv.HolderUserID != holderID || !inv.Status.CanTransitionTo(target) {
				return nil, false, nil
			}
			inv.Status = target
			inv.UpdatedAt = now
			switch target {
			case domain.InvitationStatusOpened:
				if inv.OpenedAt == nil {
					inv.OpenedAt = ptr(now)
				}
			case domain.InvitationStatusResponded:
				if inv.RespondedAt == nil {
					inv.RespondedAt = ptr(now)
				}
			}
			m.rows[id] = inv
			return &inv, true, nil
		},
		MarkDelegatedFunc: func(ctx context.Context, id, holderID uuid.UUID, t domain.DelegationTarget, now time.Time) (*domain.Invitation, bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			inv, ok := m.rows[id]
			if !ok || inv.HolderUserID != holderID || inv.IsSuperseded() || inv.DelegationLevel >= domain.MaxDelegationDepth {
				return nil, false, nil
			}
			inv.DelegatedToUserID = t.ToUserID
			inv.DelegatedToExternalRef = t.ToExternalRef
			inv.DelegatedToDisplayName = ptr(t.ToDisplayName)
			inv.Notes = t.Notes
			inv.Status = domain.InvitationStatusResponded
			if inv.RespondedAt == nil {
				inv.RespondedAt = ptr(now)
			}
			inv.DelegatedAt = ptr(now)
			inv.UpdatedAt = now
			m.rows[id] = inv
			return &inv, true, nil
		},
	}
}
