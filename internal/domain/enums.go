package domain

// InvitationStatus is the read/respond lifecycle state of an invitation.
type InvitationStatus string

const (
	InvitationStatusNew       InvitationStatus = "new"
	InvitationStatusOpened    InvitationStatus = "opened"
	InvitationStatusResponded InvitationStatus = "responded"
)

// invitationTransitions lists the allowed forward moves. Anything absent,
// including every move out of responded, is rejected.
var invitationTransitions = map[InvitationStatus][]InvitationStatus{
	InvitationStatusNew:    {InvitationStatusOpened, InvitationStatusResponded},
	InvitationStatusOpened: {InvitationStatusResponded},
}

func (s InvitationStatus) String() string { return string(s) }

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusNew, InvitationStatusOpened, InvitationStatusResponded:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s InvitationStatus) IsTerminal() bool {
	return s == InvitationStatusResponded
}

// CanTransitionTo reports whether moving from s to next is a forward step.
func (s InvitationStatus) CanTransitionTo(next InvitationStatus) bool {
	for _, allowed := range invitationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SourcesFor returns every status from which target may be reached.
// Repositories use it as the guard of conditional status writes.
func SourcesFor(target InvitationStatus) []InvitationStatus {
	var from []InvitationStatus
	for _, s := range []InvitationStatus{InvitationStatusNew, InvitationStatusOpened, InvitationStatusResponded} {
		if s.CanTransitionTo(target) {
			from = append(from, s)
		}
	}
	return from
}

// ParseTargetStatus validates a client-supplied status update value.
// Only opened and responded can be requested; new is never a target.
func ParseTargetStatus(raw string) (InvitationStatus, error) {
	s := InvitationStatus(raw)
	if s != InvitationStatusOpened && s != InvitationStatusResponded {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ParticipantKind tells whether an agenda participant belongs to the organization.
type ParticipantKind string

const (
	ParticipantKindInternal ParticipantKind = "internal"
	ParticipantKindExternal ParticipantKind = "external"
)

func (k ParticipantKind) String() string { return string(k) }

func (k ParticipantKind) IsValid() bool {
	switch k {
	case ParticipantKindInternal, ParticipantKindExternal:
		return true
	}
	return false
}

// SkipReason explains why the generator issued no invitation for a participant.
type SkipReason string

const (
	SkipReasonExternal       SkipReason = "external_participant"
	SkipReasonNoPersonnelID  SkipReason = "missing_personnel_id"
	SkipReasonNoAccount      SkipReason = "no_active_account"
	SkipReasonAlreadyInvited SkipReason = "already_invited"
	SkipReasonDuplicate      SkipReason = "duplicate_participant"
)

func (r SkipReason) String() string { return string(r) }

// IneligibilityReason explains why an invitation cannot be delegated.
type IneligibilityReason string

const (
	ReasonAlreadyDelegated       IneligibilityReason = "already_delegated"
	ReasonDelegationLimitReached IneligibilityReason = "delegation_limit_reached"
)

func (r IneligibilityReason) String() string { return string(r) }

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
