package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/service/invitation"
)

// invitationService defines the operations InvitationHandler exposes.
type invitationService interface {
	Generate(ctx context.Context, input invitation.GenerateInput) (*invitation.GenerateResult, error)
	UpdateStatus(ctx context.Context, input invitation.UpdateStatusInput) (*domain.Invitation, error)
	Delegate(ctx context.Context, input invitation.DelegateInput) (*invitation.DelegateResult, error)
	CanDelegate(ctx context.Context, invitationID uuid.UUID) (domain.DelegationEligibility, error)
	ListMine(ctx context.Context, input invitation.ListMineInput) (*invitation.ListResult, error)
	ListByAgenda(ctx context.Context, agendaID uuid.UUID) ([]domain.Invitation, error)
	DelegationChain(ctx context.Context, invitationID uuid.UUID) (*invitation.ChainView, error)
}

// InvitationHandler serves invitation REST endpoints.
type InvitationHandler struct {
	svc invitationService
	log *slog.Logger
}

// NewInvitationHandler creates an InvitationHandler.
func NewInvitationHandler(svc invitationService, logger *slog.Logger) *InvitationHandler {
	return &InvitationHandler{svc: svc, log: logger.With("handler", "invitation")}
}

// ListMine handles GET /invitations/mine?status=&limit=&offset=.
func (h *InvitationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	input := invitation.ListMineInput{Limit: limit, Offset: offset}
	if status := r.URL.Query().Get("status"); status != "" {
		input.Status = &status
	}

	res, err := h.svc.ListMine(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Items:  toInvitationList(res.Items),
		Total:  res.Total,
		Limit:  res.Limit,
		Offset: res.Offset,
	})
}

// ListByAgenda handles GET /invitations/by-agenda/{agendaId}.
func (h *InvitationHandler) ListByAgenda(w http.ResponseWriter, r *http.Request) {
	agendaID, err := uuidParam(chi.URLParam(r, "agendaId"), "agenda_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := h.svc.ListByAgenda(r.Context(), agendaID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toInvitationList(items)})
}

// UpdateStatus handles PATCH /invitations/{id}/status.
func (h *InvitationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	inv, err := h.svc.UpdateStatus(r.Context(), invitation.UpdateStatusInput{
		InvitationID: id,
		Status:       req.Status,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toInvitationResponse(*inv))
}

// Delegate handles POST /invitations/{id}/delegate.
func (h *InvitationHandler) Delegate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req delegateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.svc.Delegate(r.Context(), invitation.DelegateInput{
		InvitationID:  id,
		ToUserID:      req.ToUserID,
		ToExternalRef: req.ToExternalRef,
		ToDisplayName: req.ToDisplayName,
		Notes:         req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDelegateResponse(res))
}

// DelegationChain handles GET /invitations/{id}/delegation-chain.
func (h *InvitationHandler) DelegationChain(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	view, err := h.svc.DelegationChain(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toChainResponse(view))
}

// CanDelegate handles GET /invitations/{id}/can-delegate.
func (h *InvitationHandler) CanDelegate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	e, err := h.svc.CanDelegate(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEligibilityResponse(e))
}

// Generate handles POST /agendas/{agendaId}/invitations:generate.
func (h *InvitationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	agendaID, err := uuidParam(chi.URLParam(r, "agendaId"), "agenda_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	participants := make([]domain.Participant, len(req.Participants))
	for i, p := range req.Participants {
		participants[i] = p.toDomain()
	}

	res, err := h.svc.Generate(r.Context(), invitation.GenerateInput{
		AgendaID:     agendaID,
		Participants: participants,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenerateResponse(res))
}

func (h *InvitationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}
