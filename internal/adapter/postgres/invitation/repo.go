// Package invitation implements the Invitation repository using PostgreSQL.
package invitation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/postgres"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

const entity = "invitation"

// invitedUsersSQL lists every user who either holds an active invitation on
// the agenda or roots one of its chains.
const invitedUsersSQL = `
SELECT holder_user_id FROM invitations
 WHERE agenda_id = $1 AND delegated_to_display_name IS NULL
UNION
SELECT original_holder_user_id FROM invitations
 WHERE agenda_id = $1 AND delegation_level = 0`

// lockAgendaSQL takes a transaction-scoped advisory lock keyed by agenda id.
const lockAgendaSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

// Repo provides invitation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new invitation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns an invitation by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	inv, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return inv, nil
}

// InvitedUserIDs returns the users that must not receive another root
// invitation on agendaID.
func (r *Repo) InvitedUserIDs(ctx context.Context, agendaID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, r.q(ctx), &ids, invitedUsersSQL, agendaID); err != nil {
		return nil, postgres.MapError(err, "invited users of agenda", agendaID)
	}
	return ids, nil
}

// ListByHolder returns a page of invitations held by f.HolderID, newest first,
// and the total number of matching rows.
func (r *Repo) ListByHolder(ctx context.Context, f domain.InvitationFilter) ([]domain.Invitation, int, error) {
	where := squirrel.Eq{"holder_user_id": f.HolderID}
	if f.Status != nil {
		where["status"] = string(*f.Status)
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.q(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "count invitations of holder", f.HolderID)
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	items, err := r.list(ctx, query)
	if err != nil {
		return nil, 0, postgres.MapError(err, "list invitations of holder", f.HolderID)
	}
	return items, total, nil
}

// ListByAgenda returns every invitation of an agenda, chains grouped together
// and ordered by level.
func (r *Repo) ListByAgenda(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"agenda_id": agendaID}).
		OrderBy("original_holder_user_id", "delegation_level")

	items, err := r.list(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "list invitations of agenda", agendaID)
	}
	return items, nil
}

// ListChain returns the invitations of the chain rooted at originalHolderID
// on agendaID, ordered by delegation level.
func (r *Repo) ListChain(ctx context.Context, agendaID, originalHolderID uuid.UUID) ([]domain.Invitation, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"agenda_id": agendaID, "original_holder_user_id": originalHolderID}).
		OrderBy("delegation_level")

	items, err := r.list(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "list delegation chain", originalHolderID)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// LockAgenda serializes invitation writers of one agenda until the current
// transaction ends.
func (r *Repo) LockAgenda(ctx context.Context, agendaID uuid.UUID) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("lock agenda %s: no transaction in context", agendaID)
	}
	if _, err := r.q(ctx).Exec(ctx, lockAgendaSQL, agendaID.String()); err != nil {
		return postgres.MapError(err, "lock agenda", agendaID)
	}
	return nil
}

// CreateRoot inserts a root invitation unless a unique index already covers
// the holder on that agenda. It reports whether a row was inserted.
func (r *Repo) CreateRoot(ctx context.Context, inv domain.Invitation) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(insertValues(inv)...).
		Suffix("ON CONFLICT DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert: %w", err)
	}

	var id uuid.UUID
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, postgres.MapError(err, entity, inv.ID)
	}
	return true, nil
}

// Create inserts inv and returns the stored row. A holder who already has an
// active invitation on the agenda yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, inv domain.Invitation) (*domain.Invitation, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(insertValues(inv)...).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, inv.ID)
	}
	return created, nil
}

// TransitionStatus moves the invitation to target if holderID holds it and
// its current status may reach target. It returns the updated row and true,
// or nil and false when the guard did not match.
func (r *Repo) TransitionStatus(ctx context.Context, id, holderID uuid.UUID, target domain.InvitationStatus, now time.Time) (*domain.Invitation, bool, error) {
	sources := domain.SourcesFor(target)
	if len(sources) == 0 {
		return nil, false, domain.ErrInvalidStatus
	}

	from := make([]string, len(sources))
	for i, s := range sources {
		from[i] = string(s)
	}

	query := postgres.Builder().
		Update(table).
		Set("status", string(target)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "holder_user_id": holderID, "status": from})

	switch target {
	case domain.InvitationStatusOpened:
		query = query.Set("opened_at", squirrel.Expr("COALESCE(opened_at, ?)", now))
	case domain.InvitationStatusResponded:
		query = query.Set("responded_at", squirrel.Expr("COALESCE(responded_at, ?)", now))
	}

	return r.updateOne(ctx, query, id)
}

// MarkDelegated records t as the delegate of the invitation and closes it.
// The write applies only while holderID holds an undelegated invitation below
// the maximum depth; otherwise it returns nil and false.
func (r *Repo) MarkDelegated(ctx context.Context, id, holderID uuid.UUID, t domain.DelegationTarget, now time.Time) (*domain.Invitation, bool, error) {
	query := postgres.Builder().
		Update(table).
		Set("delegated_to_user_id", t.ToUserID).
		Set("delegated_to_external_ref", t.ToExternalRef).
		Set("delegated_to_display_name", t.ToDisplayName).
		Set("notes", t.Notes).
		Set("status", string(domain.InvitationStatusResponded)).
		Set("responded_at", squirrel.Expr("COALESCE(responded_at, ?)", now)).
		Set("delegated_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{
			"id":                        id,
			"holder_user_id":            holderID,
			"delegated_to_user_id":      nil,
			"delegated_to_external_ref": nil,
			"delegated_to_display_name": nil,
		}).
		Where(squirrel.Lt{"delegation_level": domain.MaxDelegationDepth})

	return r.updateOne(ctx, query, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) updateOne(ctx context.Context, query squirrel.UpdateBuilder, id uuid.UUID) (*domain.Invitation, bool, error) {
	inv, err := r.getOne(ctx, query.Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, postgres.MapError(err, entity, id)
	}
	return inv, true, nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.Invitation, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, r.q(ctx), &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}

	inv, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Invitation, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, err
	}
	return toDomainList(rows)
}
