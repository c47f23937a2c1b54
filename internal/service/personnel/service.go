// Package personnel maps personnel identifiers to system accounts.
package personnel

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

type registry interface {
	Lookup(ctx context.Context, personnelID string) (domain.PersonnelRecord, bool, error)
}

type accountRepo interface {
	FindActiveByPersonnelID(ctx context.Context, personnelID string) (uuid.UUID, bool, error)
}

// Service resolves personnel identifiers to active account ids.
type Service struct {
	accounts accountRepo
	registry registry
	log      *slog.Logger
}

// NewService creates a resolver. reg may be nil, in which case the registry
// check is skipped and only accounts are consulted.
func NewService(log *slog.Logger, accounts accountRepo, reg registry) *Service {
	return &Service{
		accounts: accounts,
		registry: reg,
		log:      log.With("service", "personnel"),
	}
}

// Resolve returns the active account bound to personnelID. The boolean is
// false when the identifier is blank, unknown or inactive in the registry,
// or has no active account. Lookup failures wrap domain.ErrInfrastructure.
func (s *Service) Resolve(ctx context.Context, personnelID string) (uuid.UUID, bool, error) {
	id := domain.NormalizePersonnelID(personnelID)
	if id == "" {
		return uuid.Nil, false, nil
	}

	if s.registry != nil {
		rec, found, err := s.registry.Lookup(ctx, id)
		if err != nil {
			return uuid.Nil, false, infrastructure("registry lookup", err)
		}
		if !found || !rec.Active {
			s.log.DebugContext(ctx, "personnel not active in registry",
				slog.String("personnel_id", id),
				slog.Bool("found", found),
			)
			return uuid.Nil, false, nil
		}
	}

	userID, found, err := s.accounts.FindActiveByPersonnelID(ctx, id)
	if err != nil {
		return uuid.Nil, false, infrastructure("account lookup", err)
	}
	return userID, found, nil
}

func infrastructure(op string, err error) error {
	if errors.Is(err, domain.ErrInfrastructure) {
		return err
	}
	return domain.Infrastructure(op, err)
}
