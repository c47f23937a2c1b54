// Package agenda implements read access to agendas using PostgreSQL.
package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/postgres"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

type row struct {
	ID          uuid.UUID `db:"id"`
	OwnerUserID uuid.UUID `db:"owner_user_id"`
	Title       string    `db:"title"`
	CreatedAt   time.Time `db:"created_at"`
}

// Repo reads agendas owned by the scheduling subsystem.
type Repo struct {
	db postgres.Querier
}

// New creates a new agenda repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an agenda by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agenda, error) {
	sql, args, err := postgres.Builder().
		Select("id", "owner_user_id", "title", "created_at").
		From("agendas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "agenda", id)
	}

	return &domain.Agenda{
		ID:          rw.ID,
		OwnerUserID: rw.OwnerUserID,
		Title:       rw.Title,
		CreatedAt:   rw.CreatedAt,
	}, nil
}
