package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an active account with a unique personnel id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	personnelID := "NIP" + suffix
	return SeedAccount(t, pool, domain.Account{
		Email:       "testuser-" + suffix + "@example.com",
		Name:        "Test User " + suffix,
		PersonnelID: &personnelID,
		Role:        domain.UserRoleUser,
		IsActive:    true,
	})
}

// SeedAccount inserts acc, filling ID and timestamps when empty.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, acc domain.Account) domain.Account {
	t.Helper()

	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}
	if acc.Email == "" {
		acc.Email = "account-" + uniqueSuffix() + "@example.com"
	}
	if acc.Role == "" {
		acc.Role = domain.UserRoleUser
	}
	ts := now()
	acc.CreatedAt, acc.UpdatedAt = ts, ts

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, personnel_id, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		acc.ID, acc.Email, acc.Name, acc.PersonnelID, string(acc.Role), acc.IsActive, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}
	return acc
}

// SeedAgenda creates an agenda owned by ownerID.
func SeedAgenda(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Agenda {
	t.Helper()

	a := domain.Agenda{
		ID:          uuid.New(),
		OwnerUserID: ownerID,
		Title:       "Rapat " + uniqueSuffix(),
		CreatedAt:   now(),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO agendas (id, owner_user_id, title, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.OwnerUserID, a.Title, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAgenda: %v", err)
	}
	return a
}

// SeedRootInvitation inserts a level-0 invitation for holderID.
func SeedRootInvitation(t *testing.T, pool *pgxpool.Pool, agendaID, holderID uuid.UUID) domain.Invitation {
	t.Helper()

	inv := domain.NewRootInvitation(agendaID, holderID, now())
	_, err := pool.Exec(context.Background(),
		`INSERT INTO invitations (id, agenda_id, holder_user_id, status, delegation_level,
		                          original_holder_user_id, delegation_chain, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		inv.ID, inv.AgendaID, inv.HolderUserID, string(inv.Status), inv.DelegationLevel,
		inv.OriginalHolderUserID, []uuid.UUID(inv.DelegationChain), inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRootInvitation: %v", err)
	}
	return inv
}
