package invitation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

const table = "invitations"

var columns = []string{
	"id",
	"agenda_id",
	"holder_user_id",
	"status",
	"opened_at",
	"responded_at",
	"delegation_level",
	"original_holder_user_id",
	"delegated_to_user_id",
	"delegated_to_external_ref",
	"delegated_to_display_name",
	"delegated_at",
	"notes",
	"delegation_chain",
	"created_at",
	"updated_at",
}

// row mirrors one invitations record for pgxscan.
type row struct {
	ID                     uuid.UUID   `db:"id"`
	AgendaID               uuid.UUID   `db:"agenda_id"`
	HolderUserID           uuid.UUID   `db:"holder_user_id"`
	Status                 string      `db:"status"`
	OpenedAt               *time.Time  `db:"opened_at"`
	RespondedAt            *time.Time  `db:"responded_at"`
	DelegationLevel        int         `db:"delegation_level"`
	OriginalHolderUserID   uuid.UUID   `db:"original_holder_user_id"`
	DelegatedToUserID      *uuid.UUID  `db:"delegated_to_user_id"`
	DelegatedToExternalRef *string     `db:"delegated_to_external_ref"`
	DelegatedToDisplayName *string     `db:"delegated_to_display_name"`
	DelegatedAt            *time.Time  `db:"delegated_at"`
	Notes                  *string     `db:"notes"`
	DelegationChain        []uuid.UUID `db:"delegation_chain"`
	CreatedAt              time.Time   `db:"created_at"`
	UpdatedAt              time.Time   `db:"updated_at"`
}

func (r row) toDomain() (domain.Invitation, error) {
	chain, err := domain.NewDelegationChain(r.DelegationChain)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("invitation %s: %w", r.ID, err)
	}

	inv := domain.Invitation{
		ID:                     r.ID,
		AgendaID:               r.AgendaID,
		HolderUserID:           r.HolderUserID,
		Status:                 domain.InvitationStatus(r.Status),
		OpenedAt:               r.OpenedAt,
		RespondedAt:            r.RespondedAt,
		DelegationLevel:        r.DelegationLevel,
		OriginalHolderUserID:   r.OriginalHolderUserID,
		DelegatedToUserID:      r.DelegatedToUserID,
		DelegatedToExternalRef: r.DelegatedToExternalRef,
		DelegatedToDisplayName: r.DelegatedToDisplayName,
		DelegatedAt:            r.DelegatedAt,
		Notes:                  r.Notes,
		DelegationChain:        chain,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
	if err := inv.Validate(); err != nil {
		return domain.Invitation{}, err
	}
	return inv, nil
}

func toDomainList(rows []row) ([]domain.Invitation, error) {
	out := make([]domain.Invitation, 0, len(rows))
	for _, r := range rows {
		inv, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

func insertValues(inv domain.Invitation) []any {
	return []any{
		inv.ID,
		inv.AgendaID,
		inv.HolderUserID,
		string(inv.Status),
		inv.OpenedAt,
		inv.RespondedAt,
		inv.DelegationLevel,
		inv.OriginalHolderUserID,
		inv.DelegatedToUserID,
		inv.DelegatedToExternalRef,
		inv.DelegatedToDisplayName,
		inv.DelegatedAt,
		inv.Notes,
		[]uuid.UUID(inv.DelegationChain),
		inv.CreatedAt,
		inv.UpdatedAt,
	}
}
