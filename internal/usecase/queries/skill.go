package queries

import (
	"context"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/skill"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var ErrSkillNotFound = errs.Mark(errs.New("skill not found"), errs.ErrNotFound)

// SkillListFilter holds raw query values; empty means unfiltered.
type SkillListFilter struct {
	Owner    string
	Category string
	Level    string
	MinRate  *decimal.Decimal
	MaxRate  *decimal.Decimal
}

type SkillReadStore interface {
	FindByID(ctx context.Context, id uint64) (*skill.Skill, error)
	List(ctx context.Context, filter shared.SkillFilter) ([]*skill.Skill, error)
}

type SkillQueries interface {
	List(ctx context.Context, filter SkillListFilter) ([]*SkillView, error)
	GetByID(ctx context.Context, id uint64) (*SkillView, error)
	ListFeedback(ctx context.Context, skillID uint64, cursor *Cursor, limit int) ([]*FeedbackView, *Cursor, error)
}

type skillQueriesImpl struct {
	store  SkillReadStore
	slots  shared.SlotLedger
	format identity.Format
}

func NewSkillQueries(store SkillReadStore, slots shared.SlotLedger, format identity.Format) SkillQueries {
	return &skillQueriesImpl{store: store, slots: slots, format: format}
}

func (q *skillQueriesImpl) List(ctx context.Context, filter SkillListFilter) ([]*SkillView, error) {
	f, err := q.toStoreFilter(filter)
	if err != nil {
		return nil, err
	}
	skills, err := q.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	views := make([]*SkillView, 0, len(skills))
	for _, s := range skills {
		v, err := q.toView(ctx, s)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *skillQueriesImpl) GetByID(ctx context.Context, id uint64) (*SkillView, error) {
	s, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return q.toView(ctx, s)
}

// ListFeedback pages the append-only log oldest first.
func (q *skillQueriesImpl) ListFeedback(ctx context.Context, skillID uint64, cursor *Cursor, limit int) ([]*FeedbackView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var after uint64
	if cursor != nil && cursor.After != "" {
		id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(errs.Wrap(err, "invalid cursor"), errs.ErrValidation)
		}
		after = id
	}

	s, err := q.store.FindByID(ctx, skillID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrSkillNotFound
		}
		return nil, nil, err
	}

	items := make([]*FeedbackView, 0, limit)
	var next *Cursor
	for _, f := range s.Feedbacks() {
		if f.ID() <= after {
			continue
		}
		if len(items) == limit {
			next = &Cursor{After: EncodeAfterCursor(items[len(items)-1].ID)}
			break
		}
		items = append(items, &FeedbackView{
			ID:        f.ID(),
			SkillID:   f.SkillID(),
			Student:   f.Student().String(),
			Rating:    f.Rating().Value(),
			Comment:   f.Comment().String(),
			CreatedAt: f.CreatedAt(),
		})
	}
	return items, next, nil
}

func (q *skillQueriesImpl) toStoreFilter(in SkillListFilter) (shared.SkillFilter, error) {
	var f shared.SkillFilter
	if in.Owner != "" {
		owner, err := q.format.Parse(in.Owner)
		if err != nil {
			return f, invalidFilter(err)
		}
		f.Owner = &owner
	}
	if in.Category != "" {
		c, err := skill.NewCategory(in.Category)
		if err != nil {
			return f, invalidFilter(err)
		}
		f.Category = &c
	}
	if in.Level != "" {
		l, err := skill.NewLevel(in.Level)
		if err != nil {
			return f, invalidFilter(err)
		}
		f.Level = &l
	}
	if in.MinRate != nil && in.MaxRate != nil && in.MinRate.GreaterThan(*in.MaxRate) {
		return f, invalidFilter(errs.New("minRate exceeds maxRate"))
	}
	f.MinRate = in.MinRate
	f.MaxRate = in.MaxRate
	return f, nil
}

func (q *skillQueriesImpl) toView(ctx context.Context, s *skill.Skill) (*SkillView, error) {
	slots := make([]SlotView, 0, len(s.Slots()))
	for _, sl := range s.Slots() {
		holder, booked, err := q.slots.Holder(ctx, s.ID(), sl.Label())
		if err != nil {
			return nil, err
		}
		v := SlotView{Label: sl.Label(), MeetingLink: sl.MeetingLink(), Booked: booked}
		if booked {
			v.BookedBy = holder.String()
		}
		slots = append(slots, v)
	}
	return &SkillView{
		ID:                s.ID(),
		Owner:             s.Owner().String(),
		Name:              s.Name(),
		Description:       s.Description(),
		Rate:              s.Rate().Amount(),
		Category:          s.Category().String(),
		Level:             s.Level().String(),
		Slots:             slots,
		AverageRating:     s.AverageRating(),
		FeedbackCount:     s.FeedbackCount(),
		SessionsCompleted: s.SessionsCompleted(),
		CreatedAt:         s.CreatedAt(),
	}, nil
}

func invalidFilter(err error) error {
	return errs.Mark(errs.Wrap(err, "invalid skill filter"), errs.ErrValidation)
}
