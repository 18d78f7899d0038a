package request

import (
	"skill-swap-core/internal/usecase/commands"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type BookSessionRequest struct {
	SlotLabel string `json:"slotLabel"`
	// Hours is only read under hourly pricing.
	Hours         int  `json:"hours,omitempty"`
	AllowFallback bool `json:"allowFallback,omitempty"`
}

func (r BookSessionRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.SlotLabel, validation.Required.Error("slotLabel is required")),
		validation.Field(&r.Hours, validation.Min(0)),
	))
}

func (r BookSessionRequest) ToInput(skillID uint64, idempotencyKey uuid.UUID) commands.BookingInput {
	return commands.BookingInput{
		SkillID:        skillID,
		SlotLabel:      r.SlotLabel,
		Hours:          r.Hours,
		AllowFallback:  r.AllowFallback,
		IdempotencyKey: idempotencyKey,
	}
}
