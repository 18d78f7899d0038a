package skill

import "skill-swap-core/internal/pkg/errs"

var (
	ErrEmptyName         = errs.New("skill name is required")
	ErrEmptyDescription  = errs.New("skill description is required")
	ErrNonPositiveRate   = errs.New("rate must be a positive number")
	ErrInvalidLevel      = errs.New("level must be Beginner, Intermediate or Advanced")
	ErrInvalidCategory   = errs.New("unknown skill category")
	ErrNoSlots           = errs.New("at least one time slot is required")
	ErrEmptySlotLabel    = errs.New("each slot must have a time label")
	ErrDuplicateSlot     = errs.New("slot labels must be unique within a skill")
	ErrSlotNotFound      = errs.New("slot does not belong to this skill")
	ErrFeedbackSkillMiss = errs.New("feedback belongs to another skill")
)

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

func NewLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", ErrInvalidLevel
	}
	return l, nil
}

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

func (l Level) String() string { return string(l) }

type Category string

var Categories = []Category{
	"Programming", "Music", "Languages", "Art", "Sports", "Cooking",
	"Photography", "Writing", "Business", "Science", "Design", "Other",
}

func NewCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

func (c Category) String() string { return string(c) }
