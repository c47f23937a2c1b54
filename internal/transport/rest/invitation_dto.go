package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/service/invitation"
)

type participantDTO struct {
	Kind        string  `json:"kind"`
	PersonnelID *string `json:"personnel_id,omitempty"`
	DisplayName string  `json:"display_name"`
}

type generateRequest struct {
	Participants []participantDTO `json:"participants"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type delegateRequest struct {
	ToUserID      *uuid.UUID `json:"to_user_id,omitempty"`
	ToExternalRef *string    `json:"to_external_ref,omitempty"`
	ToDisplayName string     `json:"to_display_name"`
	Notes         *string    `json:"notes,omitempty"`
}

type invitationResponse struct {
	ID                     uuid.UUID   `json:"id"`
	AgendaID               uuid.UUID   `json:"agenda_id"`
	HolderUserID           uuid.UUID   `json:"holder_user_id"`
	Status                 string      `json:"status"`
	OpenedAt               *time.Time  `json:"opened_at"`
	RespondedAt            *time.Time  `json:"responded_at"`
	DelegationLevel        int         `json:"delegation_level"`
	OriginalHolderUserID   uuid.UUID   `json:"original_holder_user_id"`
	DelegatedToUserID      *uuid.UUID  `json:"delegated_to_user_id"`
	DelegatedToExternalRef *string     `json:"delegated_to_external_ref"`
	DelegatedToDisplayName *string     `json:"delegated_to_display_name"`
	DelegatedAt            *time.Time  `json:"delegated_at"`
	Notes                  *string     `json:"notes"`
	DelegationChain        []uuid.UUID `json:"delegation_chain"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
}

type skippedResponse struct {
	Index       int            `json:"index"`
	Participant participantDTO `json:"participant"`
	Reason      string         `json:"reason"`
}

type generateResponse struct {
	Created []invitationResponse `json:"created"`
	Skipped []skippedResponse    `json:"skipped"`
}

type delegateResponse struct {
	Superseded invitationResponse  `json:"superseded"`
	Created    *invitationResponse `json:"created"`
}

type eligibilityResponse struct {
	CanDelegate     bool   `json:"can_delegate"`
	DelegationLevel int    `json:"delegation_level"`
	Reason          string `json:"reason,omitempty"`
}

type listResponse struct {
	Items  []invitationResponse `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

type chainResponse struct {
	InvitationID uuid.UUID            `json:"invitation_id"`
	Chain        []uuid.UUID          `json:"chain"`
	Links        []invitationResponse `json:"links"`
	Eligibility  *eligibilityResponse `json:"eligibility,omitempty"`
}

func (p participantDTO) toDomain() domain.Participant {
	return domain.Participant{
		Kind:        domain.ParticipantKind(p.Kind),
		PersonnelID: p.PersonnelID,
		DisplayName: p.DisplayName,
	}
}

func toParticipantDTO(p domain.Participant) participantDTO {
	return participantDTO{
		Kind:        p.Kind.String(),
		PersonnelID: p.PersonnelID,
		DisplayName: p.DisplayName,
	}
}

func toInvitationResponse(inv domain.Invitation) invitationResponse {
	chain := make([]uuid.UUID, len(inv.DelegationChain))
	copy(chain, inv.DelegationChain)

	return invitationResponse{
		ID:                     inv.ID,
		AgendaID:               inv.AgendaID,
		HolderUserID:           inv.HolderUserID,
		Status:                 inv.Status.String(),
		OpenedAt:               inv.OpenedAt,
		RespondedAt:            inv.RespondedAt,
		DelegationLevel:        inv.DelegationLevel,
		OriginalHolderUserID:   inv.OriginalHolderUserID,
		DelegatedToUserID:      inv.DelegatedToUserID,
		DelegatedToExternalRef: inv.DelegatedToExternalRef,
		DelegatedToDisplayName: inv.DelegatedToDisplayName,
		DelegatedAt:            inv.DelegatedAt,
		Notes:                  inv.Notes,
		DelegationChain:        chain,
		CreatedAt:              inv.CreatedAt,
		UpdatedAt:              inv.UpdatedAt,
	}
}

func toInvitationList(items []domain.Invitation) []invitationResponse {
	out := make([]invitationResponse, len(items))
	for i, inv := range items {
		out[i] = toInvitationResponse(inv)
	}
	return out
}

func toEligibilityResponse(e domain.DelegationEligibility) eligibilityResponse {
	return eligibilityResponse{
		CanDelegate:     e.CanDelegate,
		DelegationLevel: e.DelegationLevel,
		Reason:          e.Reason.String(),
	}
}

func toGenerateResponse(res *invitation.GenerateResult) generateResponse {
	out := generateResponse{
		Created: toInvitationList(res.Created),
		Skipped: make([]skippedResponse, len(res.Skipped)),
	}
	for i, s := range res.Skipped {
		out.Skipped[i] = skippedResponse{
			Index:       s.Index,
			Participant: toParticipantDTO(s.Participant),
			Reason:      s.Reason.String(),
		}
	}
	return out
}

func toDelegateResponse(res *invitation.DelegateResult) delegateResponse {
	out := delegateResponse{Superseded: toInvitationResponse(*res.Superseded)}
	if res.Created != nil {
		created := toInvitationResponse(*res.Created)
		out.Created = &created
	}
	return out
}

func toChainResponse(view *invitation.ChainView) chainResponse {
	chain := make([]uuid.UUID, len(view.Chain))
	copy(chain, view.Chain)

	out := chainResponse{
		InvitationID: view.Invitation.ID,
		Chain:        chain,
		Links:        toInvitationList(view.Links),
	}
	if view.Eligibility != nil {
		e := toEligibilityResponse(*view.Eligibility)
		out.Eligibility = &e
	}
	return out
}
