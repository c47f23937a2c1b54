// Package invitation implements the invitation lifecycle: generation from an
// agenda's participants, status transitions, delegation and the read paths.
package invitation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/config"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"github.com/bimasakti77/agenda-pimpinan-sub000/pkg/ctxutil"
)

var tracer = otel.Tracer("github.com/bimasakti77/agenda-pimpinan-sub000/internal/service/invitation")

type invitationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	InvitedUserIDs(ctx context.Context, agendaID uuid.UUID) ([]uuid.UUID, error)
	ListByHolder(ctx context.Context, f domain.InvitationFilter) ([]domain.Invitation, int, error)
	ListByAgenda(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error)
	ListChain(ctx context.Context, agendaID, originalHolderID uuid.UUID) ([]domain.Invitation, error)

	LockAgenda(ctx context.Context, agendaID uuid.UUID) error
	CreateRoot(ctx context.Context, inv domain.Invitation) (bool, error)
	Create(ctx context.Context, inv domain.Invitation) (*domain.Invitation, error)

	// Conditional writes: false means the guard did not match.
	TransitionStatus(ctx context.Context, id, holderID uuid.UUID, target domain.InvitationStatus, now time.Time) (*domain.Invitation, bool, error)
	MarkDelegated(ctx context.Context, id, holderID uuid.UUID, t domain.DelegationTarget, now time.Time) (*domain.Invitation, bool, error)
}

type agendaRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agenda, error)
}

type accountRepo interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

type personnelResolver interface {
	Resolve(ctx context.Context, personnelID string) (uuid.UUID, bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides invitation operations.
type Service struct {
	invitations invitationRepo
	agendas     agendaRepo
	accounts    accountRepo
	resolver    personnelResolver
	tx          txManager
	cfg         config.InvitationConfig
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new Invitation service.
func NewService(
	log *slog.Logger,
	invitations invitationRepo,
	agendas agendaRepo,
	accounts accountRepo,
	resolver personnelResolver,
	tx txManager,
	cfg config.InvitationConfig,
) *Service {
	return &Service{
		invitations: invitations,
		agendas:     agendas,
		accounts:    accounts,
		resolver:    resolver,
		tx:          tx,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.With("service", "invitation"),
	}
}

// caller returns the authenticated user and role carried by ctx.
func caller(ctx context.Context) (uuid.UUID, domain.UserRole, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, domain.UserRole(ctxutil.UserRoleFromCtx(ctx)), nil
}

// finishSpan records err on span and ends it.
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
