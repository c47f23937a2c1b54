package invitation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

// resolveConcurrency bounds parallel personnel lookups of one Generate call.
const resolveConcurrency = 8

// resolution is the outcome of resolving one participant.
type resolution struct {
	holderID uuid.UUID
	reason   domain.SkipReason
}

// Generate issues a root invitation to every internal participant that
// resolves to an active account not yet invited on the agenda. The whole
// batch commits or rolls back together, and calling it again with the same
// participants creates nothing new.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (_ *GenerateResult, err error) {
	ctx, span := tracer.Start(ctx, "invitation.Generate", trace.WithAttributes(
		attribute.String("agenda.id", input.AgendaID.String()),
		attribute.Int("participants", len(input.Participants)),
	))
	defer func() { finishSpan(span, err) }()

	callerID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxParticipants); err != nil {
		return nil, err
	}

	agenda, err := s.agendas.GetByID(ctx, input.AgendaID)
	if err != nil {
		return nil, fmt.Errorf("get agenda: %w", err)
	}
	if !agenda.CanManageInvitations(callerID, role) {
		return nil, domain.ErrNotFound
	}

	// Registry calls must not run while the agenda lock is held.
	resolved, err := s.resolveParticipants(ctx, input.Participants)
	if err != nil {
		return nil, err
	}

	var result GenerateResult
	skip := func(idx int, reason domain.SkipReason) {
		result.Skipped = append(result.Skipped, domain.SkippedParticipant{
			Index:       idx,
			Participant: input.Participants[idx],
			Reason:      reason,
		})
	}

	var candidates []int
	seen := make(map[uuid.UUID]struct{}, len(resolved))
	for idx, r := range resolved {
		if r.reason != "" {
			skip(idx, r.reason)
			continue
		}
		if _, dup := seen[r.holderID]; dup {
			skip(idx, domain.SkipReasonDuplicate)
			continue
		}
		seen[r.holderID] = struct{}{}
		candidates = append(candidates, idx)
	}

	now := s.now()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.invitations.LockAgenda(txCtx, agenda.ID); err != nil {
			return fmt.Errorf("lock agenda: %w", err)
		}

		invited, err := s.invitations.InvitedUserIDs(txCtx, agenda.ID)
		if err != nil {
			return fmt.Errorf("invited users: %w", err)
		}
		already := make(map[uuid.UUID]struct{}, len(invited))
		for _, id := range invited {
			already[id] = struct{}{}
		}

		for _, idx := range candidates {
			holderID := resolved[idx].holderID
			if _, ok := already[holderID]; ok {
				skip(idx, domain.SkipReasonAlreadyInvited)
				continue
			}

			inv := domain.NewRootInvitation(agenda.ID, holderID, now)
			created, err := s.invitations.CreateRoot(txCtx, inv)
			if err != nil {
				return fmt.Errorf("create invitation for participant %d: %w", idx, err)
			}
			if !created {
				skip(idx, domain.SkipReasonAlreadyInvited)
				continue
			}
			result.Created = append(result.Created, inv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortSkipped(result.Skipped)

	s.log.InfoContext(ctx, "invitations generated",
		slog.String("user_id", callerID.String()),
		slog.String("agenda_id", agenda.ID.String()),
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", len(result.Skipped)),
	)

	return &result, nil
}

// resolveParticipants looks up every internal participant concurrently. The
// returned slice is indexed like participants; entries without a holder
// carry the reason they were skipped.
func (s *Service) resolveParticipants(ctx context.Context, participants []domain.Participant) ([]resolution, error) {
	out := make([]resolution, len(participants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)

	for idx, p := range participants {
		if p.Kind == domain.ParticipantKindExternal {
			out[idx].reason = domain.SkipReasonExternal
			continue
		}
		if p.PersonnelID == nil || domain.NormalizePersonnelID(*p.PersonnelID) == "" {
			out[idx].reason = domain.SkipReasonNoPersonnelID
			continue
		}

		personnelID := *p.PersonnelID
		g.Go(func() error {
			holderID, found, err := s.resolver.Resolve(gctx, personnelID)
			if err != nil {
				return fmt.Errorf("resolve participant %d: %w", idx, err)
			}
			if !found {
				out[idx].reason = domain.SkipReasonNoAccount
				return nil
			}
			out[idx].holderID = holderID
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func sortSkipped(skipped []domain.SkippedParticipant) {
	slices.SortFunc(skipped, func(a, b domain.SkippedParticipant) int {
		return a.Index - b.Index
	})
}
