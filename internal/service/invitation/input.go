package invitation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

const (
	maxDisplayNameLen = 255
	maxExternalRefLen = 255
	maxNotesLen       = 2000
)

// GenerateInput holds the agenda and its resolved participant list.
type GenerateInput struct {
	AgendaID     uuid.UUID
	Participants []domain.Participant
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate(maxParticipants int) error {
	var errs []domain.FieldError

	if i.AgendaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agenda_id", Message: "required"})
	}
	if maxParticipants > 0 && len(i.Participants) > maxParticipants {
		errs = append(errs, domain.FieldError{Field: "participants", Message: fmt.Sprintf("max %d entries", maxParticipants)})
	}
	for idx, p := range i.Participants {
		if !p.Kind.IsValid() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("participants[%d].kind", idx), Message: "must be internal or external"})
		}
		if len(strings.TrimSpace(p.DisplayName)) > maxDisplayNameLen {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("participants[%d].display_name", idx), Message: "max 255 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStatusInput holds a client-requested status change.
type UpdateStatusInput struct {
	InvitationID uuid.UUID
	Status       string
}

// DelegateInput holds the invitation to hand off and its delegate.
type DelegateInput struct {
	InvitationID  uuid.UUID
	ToUserID      *uuid.UUID
	ToExternalRef *string
	ToDisplayName string
	Notes         *string
}

// Validate checks the delegate fields. A blank display name is reported as
// domain.ErrMissingDelegateName before any field error.
func (i DelegateInput) Validate() error {
	name := strings.TrimSpace(i.ToDisplayName)
	if name == "" {
		return domain.ErrMissingDelegateName
	}

	var errs []domain.FieldError

	if i.InvitationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "invitation_id", Message: "required"})
	}
	if i.ToUserID != nil && *i.ToUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "to_user_id", Message: "invalid"})
	}
	if len(name) > maxDisplayNameLen {
		errs = append(errs, domain.FieldError{Field: "to_display_name", Message: "max 255 characters"})
	}
	if i.ToExternalRef != nil && len(strings.TrimSpace(*i.ToExternalRef)) > maxExternalRefLen {
		errs = append(errs, domain.FieldError{Field: "to_external_ref", Message: "max 255 characters"})
	}
	if i.Notes != nil && len(strings.TrimSpace(*i.Notes)) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i DelegateInput) target() domain.DelegationTarget {
	return domain.DelegationTarget{
		ToUserID:      i.ToUserID,
		ToExternalRef: trimOrNil(i.ToExternalRef),
		ToDisplayName: strings.TrimSpace(i.ToDisplayName),
		Notes:         trimOrNil(i.Notes),
	}
}

// ListMineInput holds the filter and page of a ListMine call.
type ListMineInput struct {
	Status *string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors. An unknown status is
// reported as domain.ErrInvalidStatus.
func (i ListMineInput) Validate() error {
	if i.Status != nil && !domain.InvitationStatus(*i.Status).IsValid() {
		return domain.ErrInvalidStatus
	}

	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
