package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agenda is the read-only view of an agenda owned by the scheduling subsystem.
type Agenda struct {
	ID          uuid.UUID
	OwnerUserID uuid.UUID
	Title       string
	CreatedAt   time.Time
}

// CanManageInvitations reports whether userID may generate or list the
// agenda's invitations.
func (a *Agenda) CanManageInvitations(userID uuid.UUID, role UserRole) bool {
	return role.IsAdmin() || (userID != uuid.Nil && a.OwnerUserID == userID)
}

// Participant is one entry of an agenda's resolved participant list.
type Participant struct {
	Kind        ParticipantKind
	PersonnelID *string
	DisplayName string
}

// SkippedParticipant records a participant that received no invitation.
type SkippedParticipant struct {
	Index       int
	Participant Participant
	Reason      SkipReason
}
