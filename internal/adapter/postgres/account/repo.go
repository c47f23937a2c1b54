// Package account implements read access to user accounts using PostgreSQL.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/postgres"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

var columns = []string{"id", "email", "name", "personnel_id", "role", "is_active", "created_at", "updated_at"}

type row struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	Name        string    `db:"name"`
	PersonnelID *string   `db:"personnel_id"`
	Role        string    `db:"role"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Account {
	return domain.Account{
		ID:          r.ID,
		Email:       r.Email,
		Name:        r.Name,
		PersonnelID: r.PersonnelID,
		Role:        domain.UserRole(r.Role),
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides account lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindActiveByPersonnelID returns the id of the active account bound to
// personnelID. The boolean is false when no such account exists.
func (r *Repo) FindActiveByPersonnelID(ctx context.Context, personnelID string) (uuid.UUID, bool, error) {
	sql, args, err := postgres.Builder().
		Select("id").
		From("users").
		Where(squirrel.Eq{"personnel_id": personnelID, "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("build query: %w", err)
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, postgres.MapError(err, "account by personnel id", personnelID)
	}
	return id, true, nil
}

// GetActiveByID returns an active account. Missing and deactivated accounts
// both yield domain.ErrNotFound.
func (r *Repo) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "account", id)
	}

	acc := rw.toDomain()
	return &acc, nil
}
