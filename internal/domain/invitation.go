package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxDelegationDepth is the deepest delegation level an invitation may reach.
// An invitation at this level can no longer be handed off.
const MaxDelegationDepth = 2

// DelegationChain is the ordered list of holders from the root recipient
// to the current holder.
type DelegationChain []uuid.UUID

// NewDelegationChain validates ids loaded from storage or built by the
// delegation engine. A chain is non-empty, has no nil ids and never lists
// the same holder twice.
func NewDelegationChain(ids []uuid.UUID) (DelegationChain, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("delegation chain: empty")
	}
	if len(ids) > MaxDelegationDepth+1 {
		return nil, fmt.Errorf("delegation chain: %d links exceeds depth %d", len(ids), MaxDelegationDepth)
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for i, id := range ids {
		if id == uuid.Nil {
			return nil, fmt.Errorf("delegation chain: nil id at position %d", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("delegation chain: holder %s repeated", id)
		}
		seen[id] = struct{}{}
	}
	chain := make(DelegationChain, len(ids))
	copy(chain, ids)
	return chain, nil
}

// Root returns the first holder in the chain.
func (c DelegationChain) Root() uuid.UUID {
	if len(c) == 0 {
		return uuid.Nil
	}
	return c[0]
}

// Current returns the last holder in the chain.
func (c DelegationChain) Current() uuid.UUID {
	if len(c) == 0 {
		return uuid.Nil
	}
	return c[len(c)-1]
}

// Contains reports whether id is one of the chain's holders.
func (c DelegationChain) Contains(id uuid.UUID) bool {
	for _, h := range c {
		if h == id {
			return true
		}
	}
	return false
}

// Extend returns a new chain with id appended. The receiver is not modified.
func (c DelegationChain) Extend(id uuid.UUID) DelegationChain {
	out := make(DelegationChain, len(c), len(c)+1)
	copy(out, c)
	return append(out, id)
}

// Invitation is a per-recipient tracked record of an agenda notification.
type Invitation struct {
	ID                     uuid.UUID
	AgendaID               uuid.UUID
	HolderUserID           uuid.UUID
	Status                 InvitationStatus
	OpenedAt               *time.Time
	RespondedAt            *time.Time
	DelegationLevel        int
	OriginalHolderUserID   uuid.UUID
	DelegatedToUserID      *uuid.UUID
	DelegatedToExternalRef *string
	DelegatedToDisplayName *string
	DelegatedAt            *time.Time
	Notes                  *string
	DelegationChain        DelegationChain
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewRootInvitation builds the first invitation of a chain for holderID.
func NewRootInvitation(agendaID, holderID uuid.UUID, now time.Time) Invitation {
	return Invitation{
		ID:                   uuid.New(),
		AgendaID:             agendaID,
		HolderUserID:         holderID,
		Status:               InvitationStatusNew,
		DelegationLevel:      0,
		OriginalHolderUserID: holderID,
		DelegationChain:      DelegationChain{holderID},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// IsSuperseded reports whether the invitation was handed off to someone else.
func (i *Invitation) IsSuperseded() bool {
	return i.DelegatedToUserID != nil || i.DelegatedToExternalRef != nil || i.DelegatedToDisplayName != nil
}

// IsHeldBy reports whether userID is the current holder.
func (i *Invitation) IsHeldBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && i.HolderUserID == userID
}

// CheckDelegable applies the delegation preconditions in a fixed order:
// ownership, then supersession, then depth. It is the single rule used by
// both the eligibility query and the delegation engine.
func (i *Invitation) CheckDelegable(callerID uuid.UUID) error {
	if !i.IsHeldBy(callerID) {
		return ErrNotFound
	}
	if i.IsSuperseded() {
		return ErrAlreadyDelegated
	}
	if i.DelegationLevel >= MaxDelegationDepth {
		return ErrDelegationLimitExceeded
	}
	return nil
}

// DelegationEligibility is the advisory answer to "can this be delegated".
type DelegationEligibility struct {
	CanDelegate     bool
	DelegationLevel int
	Reason          IneligibilityReason
}

// Eligibility evaluates CheckDelegable for callerID. A caller who is not the
// holder gets ErrNotFound rather than an answer.
func (i *Invitation) Eligibility(callerID uuid.UUID) (DelegationEligibility, error) {
	result := DelegationEligibility{DelegationLevel: i.DelegationLevel}

	switch err := i.CheckDelegable(callerID); err {
	case nil:
		result.CanDelegate = true
	case ErrAlreadyDelegated:
		result.Reason = ReasonAlreadyDelegated
	case ErrDelegationLimitExceeded:
		result.Reason = ReasonDelegationLimitReached
	default:
		return DelegationEligibility{}, err
	}

	return result, nil
}

// SpawnDelegate builds the child invitation handed to toUserID.
func (i *Invitation) SpawnDelegate(toUserID uuid.UUID, now time.Time) (Invitation, error) {
	if i.DelegationLevel+1 > MaxDelegationDepth {
		return Invitation{}, ErrDelegationLimitExceeded
	}
	if i.DelegationChain.Contains(toUserID) {
		return Invitation{}, NewValidationError("to_user_id", "already part of the delegation chain")
	}

	return Invitation{
		ID:                   uuid.New(),
		AgendaID:             i.AgendaID,
		HolderUserID:         toUserID,
		Status:               InvitationStatusNew,
		DelegationLevel:      i.DelegationLevel + 1,
		OriginalHolderUserID: i.OriginalHolderUserID,
		DelegationChain:      i.DelegationChain.Extend(toUserID),
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// Validate checks the structural invariants of a loaded invitation.
func (i *Invitation) Validate() error {
	if !i.Status.IsValid() {
		return fmt.Errorf("invitation %s: invalid status %q", i.ID, i.Status)
	}
	if i.DelegationLevel < 0 || i.DelegationLevel > MaxDelegationDepth {
		return fmt.Errorf("invitation %s: delegation level %d out of range", i.ID, i.DelegationLevel)
	}
	if len(i.DelegationChain) != i.DelegationLevel+1 {
		return fmt.Errorf("invitation %s: chain length %d does not match level %d", i.ID, len(i.DelegationChain), i.DelegationLevel)
	}
	if i.DelegationChain.Root() != i.OriginalHolderUserID {
		return fmt.Errorf("invitation %s: chain root differs from original holder", i.ID)
	}
	if i.DelegationChain.Current() != i.HolderUserID {
		return fmt.Errorf("invitation %s: chain tail differs from holder", i.ID)
	}
	if i.IsSuperseded() && i.Status != InvitationStatusResponded {
		return fmt.Errorf("invitation %s: superseded but status %q", i.ID, i.Status)
	}
	return nil
}

// DelegationTarget describes who an invitation is handed to. ToDisplayName is
// required; ToUserID is set when the delegate has a system account.
type DelegationTarget struct {
	ToUserID      *uuid.UUID
	ToExternalRef *string
	ToDisplayName string
	Notes         *string
}

// InvitationFilter selects a page of one holder's invitations.
type InvitationFilter struct {
	HolderID uuid.UUID
	Status   *InvitationStatus
	Limit    int
	Offset   int
}
