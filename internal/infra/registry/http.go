package registry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/infra/httpclient"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// HTTP talks to a deployed registry service fronting the contract.
type HTTP struct {
	c *httpclient.Client
}

var _ shared.ContractClient = (*HTTP)(nil)

func NewHTTP(baseURL string, timeout time.Duration) *HTTP {
	return &HTTP{c: httpclient.New(baseURL, "", timeout)}
}

type registerUserRequest struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
}

type listSkillRequest struct {
	Owner    string          `json:"owner"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Level    string          `json:"level"`
	Rate     decimal.Decimal `json:"rate"`
	Slots    []string        `json:"slots"`
}

type listSkillResponse struct {
	SkillID uint64 `json:"skill_id"`
}

type bookSessionRequest struct {
	SessionID     uint64 `json:"session_id"`
	SkillID       uint64 `json:"skill_id"`
	Student       string `json:"student"`
	Teacher       string `json:"teacher"`
	SlotLabel     string `json:"slot_label"`
	TransactionID string `json:"transaction_id"`
}

type completeSessionRequest struct {
	Teacher string `json:"teacher"`
}

type claimAwardRequest struct {
	Recipient string `json:"recipient"`
}

type claimAwardResponse struct {
	AssetID string `json:"asset_id"`
}

func (h *HTTP) RegisterUser(ctx context.Context, id identity.Identity, name string) error {
	err := h.c.PostJSON(ctx, "/users", registerUserRequest{Identity: id.String(), Name: name}, nil)
	if code, ok := httpclient.StatusOf(err); ok && code == http.StatusConflict {
		return errs.Mark(err, user.ErrAlreadyRegistered)
	}
	return err
}

func (h *HTTP) ListSkill(ctx context.Context, owner identity.Identity, l shared.SkillListing) (uint64, error) {
	var out listSkillResponse
	err := h.c.PostJSON(ctx, "/skills", listSkillRequest{
		Owner:    owner.String(),
		Name:     l.Name,
		Category: l.Category,
		Level:    l.Level,
		Rate:     l.Rate,
		Slots:    l.Slots,
	}, &out)
	if err != nil {
		return 0, err
	}
	if out.SkillID == 0 {
		return 0, errs.New("registry returned no skill id")
	}
	return out.SkillID, nil
}

func (h *HTTP) BookSession(ctx context.Context, rec shared.SessionRecord) error {
	return h.c.PostJSON(ctx, "/sessions", bookSessionRequest{
		SessionID:     rec.SessionID,
		SkillID:       rec.SkillID,
		Student:       rec.Student.String(),
		Teacher:       rec.Teacher.String(),
		SlotLabel:     rec.SlotLabel,
		TransactionID: rec.TransactionID,
	}, nil)
}

func (h *HTTP) CompleteSession(ctx context.Context, sessionID uint64, teacher identity.Identity) error {
	return h.c.PostJSON(ctx, fmt.Sprintf("/sessions/%d/complete", sessionID), completeSessionRequest{Teacher: teacher.String()}, nil)
}

func (h *HTTP) ClaimAward(ctx context.Context, sessionID uint64, recipient identity.Identity) (string, error) {
	var out claimAwardResponse
	if err := h.c.PostJSON(ctx, fmt.Sprintf("/sessions/%d/award", sessionID), claimAwardRequest{Recipient: recipient.String()}, &out); err != nil {
		return "", err
	}
	return out.AssetID, nil
}
