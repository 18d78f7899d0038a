package request

import (
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

type SlotRequest struct {
	Label       string `json:"label"`
	MeetingLink string `json:"meetingLink"`
}

func (r SlotRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Label, validation.Required.Error("slot label is required"), validation.Length(1, 100)),
		validation.Field(&r.MeetingLink, validation.When(r.MeetingLink != "", is.URL.Error("meeting link must be a URL"))),
	)
}

type ListSkillRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Rate        string        `json:"rate"`
	Category    string        `json:"category"`
	Level       string        `json:"level"`
	Slots       []SlotRequest `json:"slots"`
}

func (r ListSkillRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Required.Error("description is required"), validation.Length(1, 2000)),
		validation.Field(&r.Rate, validation.Required.Error("rate is required"), validation.By(isDecimal)),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Level, validation.Required),
		validation.Field(&r.Slots, validation.Required.Error("at least one slot is required")),
	))
}

func (r ListSkillRequest) ToInput() (commands.ListSkillInput, error) {
	rate, err := decimal.NewFromString(r.Rate)
	if err != nil {
		return commands.ListSkillInput{}, invalid(err)
	}
	slots := make([]commands.SlotInput, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = commands.SlotInput{Label: s.Label, MeetingLink: s.MeetingLink}
	}
	return commands.ListSkillInput{
		Name:        r.Name,
		Description: r.Description,
		Rate:        rate,
		Category:    r.Category,
		Level:       r.Level,
		Slots:       slots,
	}, nil
}

// SkillListQuery is bound from the query string.
type SkillListQuery struct {
	Owner    string `form:"owner"`
	Category string `form:"category"`
	Level    string `form:"level"`
	MinRate  string `form:"minRate"`
	MaxRate  string `form:"maxRate"`
}

func (q SkillListQuery) ToFilter() (queries.SkillListFilter, error) {
	f := queries.SkillListFilter{Owner: q.Owner, Category: q.Category, Level: q.Level}
	var err error
	if f.MinRate, err = optionalDecimal(q.MinRate); err != nil {
		return queries.SkillListFilter{}, err
	}
	if f.MaxRate, err = optionalDecimal(q.MaxRate); err != nil {
		return queries.SkillListFilter{}, err
	}
	return f, nil
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, invalid(errs.Wrapf(err, "invalid rate %q", s))
	}
	return &d, nil
}

func isDecimal(value any) error {
	s, _ := value.(string)
	if _, err := decimal.NewFromString(s); err != nil {
		return errs.New("must be a decimal number")
	}
	return nil
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return errs.Mark(err, errs.ErrValidation)
}
