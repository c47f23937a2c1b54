package invitation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

// ListMine returns a page of invitations held by the caller, newest first.
func (s *Service) ListMine(ctx context.Context, input ListMineInput) (*ListResult, error) {
	callerID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.InvitationFilter{
		HolderID: callerID,
		Limit:    s.pageSize(input.Limit),
		Offset:   input.Offset,
	}
	if input.Status != nil {
		status := domain.InvitationStatus(*input.Status)
		filter.Status = &status
	}

	items, total, err := s.invitations.ListByHolder(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}

	return &ListResult{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// ListByAgenda returns every invitation of an agenda. Only the agenda owner
// and admins may list them; anyone else gets domain.ErrNotFound.
func (s *Service) ListByAgenda(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error) {
	callerID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	agenda, err := s.agendas.GetByID(ctx, agendaID)
	if err != nil {
		return nil, fmt.Errorf("get agenda: %w", err)
	}
	if !agenda.CanManageInvitations(callerID, role) {
		return nil, domain.ErrNotFound
	}

	items, err := s.invitations.ListByAgenda(ctx, agendaID)
	if err != nil {
		return nil, fmt.Errorf("list agenda invitations: %w", err)
	}
	return items, nil
}

// DelegationChain returns the chain an invitation belongs to. Members of the
// chain and admins may read it.
func (s *Service) DelegationChain(ctx context.Context, invitationID uuid.UUID) (_ *ChainView, err error) {
	ctx, span := tracer.Start(ctx, "invitation.DelegationChain", trace.WithAttributes(
		attribute.String("invitation.id", invitationID.String()),
	))
	defer func() { finishSpan(span, err) }()

	callerID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	inv, err := s.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	if !inv.DelegationChain.Contains(callerID) && !role.IsAdmin() {
		return nil, domain.ErrNotFound
	}

	links, err := s.invitations.ListChain(ctx, inv.AgendaID, inv.OriginalHolderUserID)
	if err != nil {
		return nil, fmt.Errorf("list chain: %w", err)
	}

	view := &ChainView{
		Invitation: *inv,
		Chain:      inv.DelegationChain,
		Links:      links,
	}
	if inv.IsHeldBy(callerID) {
		eligibility, err := inv.Eligibility(callerID)
		if err != nil {
			return nil, err
		}
		view.Eligibility = &eligibility
	}
	return view, nil
}

// pageSize clamps a requested limit to the configured bounds.
func (s *Service) pageSize(requested int) int {
	switch {
	case requested <= 0:
		return s.cfg.DefaultPageSize
	case s.cfg.MaxPageSize > 0 && requested > s.cfg.MaxPageSize:
		return s.cfg.MaxPageSize
	default:
		return requested
	}
}
