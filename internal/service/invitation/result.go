package invitation

import (
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

// GenerateResult reports what a Generate call created and which participants
// received no invitation.
type GenerateResult struct {
	Created []domain.Invitation
	Skipped []domain.SkippedParticipant
}

// DelegateResult holds the superseded invitation and, when the delegate has a
// system account, the invitation spawned for them.
type DelegateResult struct {
	Superseded *domain.Invitation
	Created    *domain.Invitation
}

// ListResult is one page of invitations.
type ListResult struct {
	Items  []domain.Invitation
	Total  int
	Limit  int
	Offset int
}

// ChainView describes an invitation's delegation chain. Eligibility is set
// only for the current holder.
type ChainView struct {
	Invitation  domain.Invitation
	Chain       domain.DelegationChain
	Links       []domain.Invitation
	Eligibility *domain.DelegationEligibility
}
