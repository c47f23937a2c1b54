package invitation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

// CanDelegate reports whether the caller may delegate the invitation right
// now. The answer is advisory; Delegate checks again when it writes.
func (s *Service) CanDelegate(ctx context.Context, invitationID uuid.UUID) (_ domain.DelegationEligibility, err error) {
	ctx, span := tracer.Start(ctx, "invitation.CanDelegate", trace.WithAttributes(
		attribute.String("invitation.id", invitationID.String()),
	))
	defer func() { finishSpan(span, err) }()

	callerID, _, err := caller(ctx)
	if err != nil {
		return domain.DelegationEligibility{}, err
	}

	inv, err := s.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return domain.DelegationEligibility{}, fmt.Errorf("get invitation: %w", err)
	}

	return inv.Eligibility(callerID)
}
