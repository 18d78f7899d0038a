package booking

import (
	"skill-swap-core/internal/domain/skill"

	"github.com/shopspring/decimal"
)

type PriceCalculator interface {
	AmountDue(rate skill.Rate, hours int) (decimal.Decimal, error)
	// BilledHours is what the session counts towards teacher reputation.
	BilledHours(hours int) int
}

// FlatRateCalculator charges the listed rate once per booking regardless
// of the requested hours.
type FlatRateCalculator struct{}

func (FlatRateCalculator) AmountDue(rate skill.Rate, _ int) (decimal.Decimal, error) {
	if !rate.Amount().IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}
	return rate.Amount(), nil
}

func (FlatRateCalculator) BilledHours(int) int { return 1 }

type HourlyCalculator struct{}

func (HourlyCalculator) AmountDue(rate skill.Rate, hours int) (decimal.Decimal, error) {
	if hours < 1 {
		return decimal.Zero, ErrInvalidHours
	}
	amount := rate.Amount().Mul(decimal.NewFromInt(int64(hours)))
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}
	return amount, nil
}

func (HourlyCalculator) BilledHours(hours int) int {
	if hours < 1 {
		return 1
	}
	return hours
}

func NewPriceCalculator(pricing string) PriceCalculator {
	if pricing == "hourly" {
		return HourlyCalculator{}
	}
	return FlatRateCalculator{}
}
