package queries

import (
	"context"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/session"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"
)

var (
	ErrSessionNotFound = errs.Mark(errs.New("session not found"), errs.ErrNotFound)
	// Non-participants get the same answer as for a missing session.
	ErrSessionAccess = ErrSessionNotFound
)

type SessionReadStore interface {
	FindByID(ctx context.Context, id uint64) (*session.Session, error)
	List(ctx context.Context, filter shared.SessionFilter) ([]*session.Session, error)
}

type SessionQueries interface {
	GetByID(ctx context.Context, sc auth.SessionContext, id uint64) (*SessionView, error)
	ListMine(ctx context.Context, sc auth.SessionContext) ([]*SessionView, error)
}

type sessionQueriesImpl struct {
	store SessionReadStore
}

func NewSessionQueries(store SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{store: store}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, sc auth.SessionContext, id uint64) (*SessionView, error) {
	caller, err := sc.RequireIdentity()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	s, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !s.IsParticipant(caller) {
		return nil, ErrSessionAccess
	}
	return ToSessionView(s), nil
}

func (q *sessionQueriesImpl) ListMine(ctx context.Context, sc auth.SessionContext) ([]*SessionView, error) {
	caller, err := sc.RequireIdentity()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	sessions, err := q.store.List(ctx, shared.SessionFilter{Participant: &caller})
	if err != nil {
		return nil, err
	}
	views := make([]*SessionView, len(sessions))
	for i, s := range sessions {
		views[i] = ToSessionView(s)
	}
	return views, nil
}

func ToSessionView(s *session.Session) *SessionView {
	b := s.Booking()
	return &SessionView{
		ID:             s.ID(),
		SkillID:        b.SkillID,
		Student:        b.Student.String(),
		Teacher:        b.Teacher.String(),
		SlotLabel:      b.SlotLabel,
		MeetingLink:    b.MeetingLink,
		Hours:          b.Hours,
		Amount:         b.Amount,
		TransactionID:  b.TransactionID,
		Status:         string(s.Status()),
		Completed:      s.IsCompleted(),
		AwardStatus:    s.AwardStatus().String(),
		AwardedAssetID: s.AwardedAssetID(),
		CreatedAt:      s.CreatedAt(),
		CompletedAt:    s.CompletedAt(),
	}
}
