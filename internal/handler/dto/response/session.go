package response

import (
	"skill-swap-core/internal/pkg/ptr"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"
)

type SessionResponse struct {
	ID             uint64  `json:"id"`
	SkillID        uint64  `json:"skillId"`
	Student        string  `json:"student"`
	Teacher        string  `json:"teacher"`
	SlotLabel      string  `json:"slotLabel"`
	MeetingLink    string  `json:"meetingLink,omitempty"`
	Hours          int     `json:"hours"`
	Amount         string  `json:"amount"`
	TransactionID  string  `json:"transactionId"`
	Status         string  `json:"status"`
	Completed      bool    `json:"completed"`
	AwardStatus    string  `json:"awardStatus"`
	AwardedAssetID *string `json:"awardedAssetId"`
	CreatedAt      int64   `json:"createdAt"`
	CompletedAt    *int64  `json:"completedAt,omitempty"`
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	res := &SessionResponse{
		ID:             v.ID,
		SkillID:        v.SkillID,
		Student:        v.Student,
		Teacher:        v.Teacher,
		SlotLabel:      v.SlotLabel,
		MeetingLink:    v.MeetingLink,
		Hours:          v.Hours,
		Amount:         v.Amount.String(),
		TransactionID:  v.TransactionID,
		Status:         v.Status,
		Completed:      v.Completed,
		AwardStatus:    v.AwardStatus,
		AwardedAssetID: v.AwardedAssetID,
		CreatedAt:      v.CreatedAt.Unix(),
	}
	if v.CompletedAt != nil {
		res.CompletedAt = ptr.Of(v.CompletedAt.Unix())
	}
	return res
}

func FromSessionViews(vs []*queries.SessionView) []*SessionResponse {
	res := make([]*SessionResponse, len(vs))
	for i, v := range vs {
		res[i] = FromSessionView(v)
	}
	return res
}

type CompletionResponse struct {
	SessionID      uint64  `json:"sessionId"`
	Completed      bool    `json:"completed"`
	AwardedAssetID *string `json:"awardedAssetId"`
	AwardStatus    string  `json:"awardStatus"`
	Replayed       bool    `json:"replayed,omitempty"`
}

func FromCompletionResult(r *commands.CompletionResult) *CompletionResponse {
	return &CompletionResponse{
		SessionID:      r.SessionID,
		Completed:      r.Completed,
		AwardedAssetID: r.AwardedAssetID,
		AwardStatus:    r.AwardStatus.String(),
		Replayed:       r.Replayed,
	}
}

type CancelResponse struct {
	SessionID      uint64 `json:"sessionId"`
	TransactionID  string `json:"transactionId"`
	RefundRequired bool   `json:"refundRequired"`
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{SessionID: r.SessionID, TransactionID: r.TransactionID, RefundRequired: r.RefundRequired}
}
