package skill

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rate is the hourly price of a skill in ledger units.
type Rate struct {
	amount decimal.Decimal
}

func NewRate(d decimal.Decimal) (Rate, error) {
	if !d.IsPositive() {
		return Rate{}, ErrNonPositiveRate
	}
	return Rate{amount: d}, nil
}

func (r Rate) Amount() decimal.Decimal { return r.amount }
func (r Rate) String() string          { return r.amount.String() }

// Slot is a bookable time window. Booked state lives in the slot ledger,
// not here.
type Slot struct {
	label       string
	meetingLink string
}

func NewSlot(label, meetingLink string) (Slot, error) {
	l := strings.TrimSpace(label)
	if l == "" {
		return Slot{}, ErrEmptySlotLabel
	}
	return Slot{label: l, meetingLink: strings.TrimSpace(meetingLink)}, nil
}

func (s Slot) Label() string       { return s.label }
func (s Slot) MeetingLink() string { return s.meetingLink }
