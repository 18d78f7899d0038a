//go:build unit || e2e

package builder

import (
	reqdto "skill-swap-core/internal/handler/dto/request"
	"skill-swap-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	SkillID        uint64
	SlotLabel      string
	Hours          int
	AllowFallback  bool
	IdempotencyKey uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		SkillID:   1,
		SlotLabel: "Monday 10 AM",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildInput() commands.BookingInput {
	return commands.BookingInput{
		SkillID:        b.SkillID,
		SlotLabel:      b.SlotLabel,
		Hours:          b.Hours,
		AllowFallback:  b.AllowFallback,
		IdempotencyKey: b.IdempotencyKey,
	}
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookSessionRequest {
	return reqdto.BookSessionRequest{SlotLabel: b.SlotLabel, Hours: b.Hours, AllowFallback: b.AllowFallback}
}
