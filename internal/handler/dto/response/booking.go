package response

import (
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"
)

type BookingResponse struct {
	AttemptID      string           `json:"attemptId"`
	State          string           `json:"state"`
	SkillID        uint64           `json:"skillId"`
	SlotLabel      string           `json:"slotLabel"`
	Amount         string           `json:"amount"`
	Receiver       string           `json:"receiver,omitempty"`
	TransactionID  string           `json:"transactionId,omitempty"`
	FallbackUsed   bool             `json:"fallbackUsed"`
	RefundRequired bool             `json:"refundRequired"`
	Reason         string           `json:"reason,omitempty"`
	Replayed       bool             `json:"replayed,omitempty"`
	Session        *SessionResponse `json:"session,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	a := r.Attempt
	res := &BookingResponse{
		AttemptID:      a.ID().String(),
		State:          a.State().String(),
		SkillID:        a.SkillID(),
		SlotLabel:      a.SlotLabel(),
		Amount:         a.Amount().String(),
		Receiver:       a.Receiver().String(),
		TransactionID:  a.TransactionID(),
		FallbackUsed:   a.FallbackUsed(),
		RefundRequired: a.RefundRequired(),
		Reason:         a.Reason(),
		Replayed:       r.Replayed,
	}
	if r.Session != nil {
		res.Session = FromSessionView(queries.ToSessionView(r.Session))
	}
	return res
}
