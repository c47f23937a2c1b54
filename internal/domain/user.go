package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a system account that may hold invitations.
type Account struct {
	ID          uuid.UUID
	Email       string
	Name        string
	PersonnelID *string
	Role        UserRole
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PersonnelRecord is the registry's answer for one personnel identifier.
type PersonnelRecord struct {
	PersonnelID string
	Active      bool
}
