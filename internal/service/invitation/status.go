package invitation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

// UpdateStatus applies a client-requested status. Only opened and responded
// are accepted; anything else is domain.ErrInvalidStatus.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Invitation, error) {
	target, err := domain.ParseTargetStatus(input.Status)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, input.InvitationID, target)
}

// MarkOpened records that the holder opened the invitation. Calling it on an
// opened or responded invitation changes nothing.
func (s *Service) MarkOpened(ctx context.Context, invitationID uuid.UUID) (*domain.Invitation, error) {
	return s.transition(ctx, invitationID, domain.InvitationStatusOpened)
}

// MarkResponded records the holder's response. Calling it on a responded
// invitation changes nothing.
func (s *Service) MarkResponded(ctx context.Context, invitationID uuid.UUID) (*domain.Invitation, error) {
	return s.transition(ctx, invitationID, domain.InvitationStatusResponded)
}

// transition moves the caller's invitation forward to target with one
// conditional write. When the guard does not match, the row is re-read: the
// holder gets it back unchanged, anyone else gets domain.ErrNotFound.
func (s *Service) transition(ctx context.Context, invitationID uuid.UUID, target domain.InvitationStatus) (_ *domain.Invitation, err error) {
	ctx, span := tracer.Start(ctx, "invitation.Transition", trace.WithAttributes(
		attribute.String("invitation.id", invitationID.String()),
		attribute.String("invitation.target_status", target.String()),
	))
	defer func() { finishSpan(span, err) }()

	callerID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var (
		inv     *domain.Invitation
		changed bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, ok, err := s.invitations.TransitionStatus(txCtx, invitationID, callerID, target, s.now())
		if err != nil {
			return fmt.Errorf("transition invitation: %w", err)
		}
		if ok {
			inv, changed = updated, true
			return nil
		}

		current, err := s.invitations.GetByID(txCtx, invitationID)
		if err != nil {
			return fmt.Errorf("get invitation: %w", err)
		}
		if !current.IsHeldBy(callerID) {
			return domain.ErrNotFound
		}
		inv = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "invitation status changed",
			slog.String("user_id", callerID.String()),
			slog.String("invitation_id", inv.ID.String()),
			slog.String("status", inv.Status.String()),
		)
	}

	return inv, nil
}
