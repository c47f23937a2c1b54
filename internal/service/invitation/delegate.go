package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

// Delegate hands the caller's invitation to another party. The current row is
// closed with a single conditional write; when the delegate has an account a
// child invitation one level deeper is created in the same transaction.
//
// Rejections, in order: domain.ErrMissingDelegateName, domain.ErrSelfDelegation,
// validation errors, then domain.ErrNotFound, domain.ErrAlreadyDelegated,
// domain.ErrDelegationLimitExceeded, a to_user_id validation error when the
// delegate already appears in the chain or has no active account, and
// domain.ErrDelegateAlreadyInvited.
//
// Ownership is checked before supersession, so a caller who does not hold
// the row gets domain.ErrNotFound even when it was already delegated. Only
// the holder ever sees domain.ErrAlreadyDelegated.
func (s *Service) Delegate(ctx context.Context, input DelegateInput) (_ *DelegateResult, err error) {
	ctx, span := tracer.Start(ctx, "invitation.Delegate", trace.WithAttributes(
		attribute.String("invitation.id", input.InvitationID.String()),
		attribute.Bool("delegate.has_account", input.ToUserID != nil),
	))
	defer func() { finishSpan(span, err) }()

	callerID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.ToUserID != nil && *input.ToUserID == callerID {
		return nil, domain.ErrSelfDelegation
	}

	target := input.target()
	now := s.now()

	var result DelegateResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		superseded, ok, err := s.invitations.MarkDelegated(txCtx, input.InvitationID, callerID, target, now)
		if err != nil {
			return fmt.Errorf("mark delegated: %w", err)
		}
		if !ok {
			return s.delegationRejection(txCtx, input.InvitationID, callerID)
		}
		result.Superseded = superseded

		if target.ToUserID == nil {
			return nil
		}

		if _, err := s.accounts.GetActiveByID(txCtx, *target.ToUserID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("to_user_id", "no active account")
			}
			return fmt.Errorf("get delegate account: %w", err)
		}

		child, err := superseded.SpawnDelegate(*target.ToUserID, now)
		if err != nil {
			return err
		}

		created, err := s.invitations.Create(txCtx, child)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDelegateAlreadyInvited
			}
			return fmt.Errorf("create delegate invitation: %w", err)
		}
		result.Created = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", callerID.String()),
		slog.String("invitation_id", result.Superseded.ID.String()),
		slog.Int("delegation_level", result.Superseded.DelegationLevel),
	}
	if result.Created != nil {
		attrs = append(attrs,
			slog.String("delegate_user_id", result.Created.HolderUserID.String()),
			slog.String("created_invitation_id", result.Created.ID.String()),
		)
	}
	s.log.InfoContext(ctx, "invitation delegated", attrs...)

	return &result, nil
}

// delegationRejection explains why the conditional delegation write matched
// no row. The re-read is classified by the same rule the eligibility query
// uses; a row that passes it lost a concurrent delegation.
func (s *Service) delegationRejection(ctx context.Context, invitationID, callerID uuid.UUID) error {
	current, err := s.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return fmt.Errorf("get invitation: %w", err)
	}
	if err := current.CheckDelegable(callerID); err != nil {
		return err
	}
	return domain.ErrAlreadyDelegated
}
