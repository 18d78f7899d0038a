package ledger

import (
	"context"
	"net/http"
	"strings"
	"time"

	"skill-swap-core/internal/infra/httpclient"
	"skill-swap-core/internal/pkg/errs"
)

type HTTPClient struct {
	c *httpclient.Client
}

func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{c: httpclient.New(baseURL, token, timeout)}
}

type txResponse struct {
	TxID string `json:"tx_id"`
}

func (h *HTTPClient) SignAndSubmit(ctx context.Context, t Transfer) (string, error) {
	return h.submit(ctx, "/v1/payments", t)
}

func (h *HTTPClient) SubmitSigned(ctx context.Context, st SignedTransfer) (string, error) {
	return h.submit(ctx, "/v1/transactions", st)
}

func (h *HTTPClient) submit(ctx context.Context, path string, body any) (string, error) {
	var out txResponse
	if err := h.c.PostJSON(ctx, path, body, &out); err != nil {
		return "", classify(err)
	}
	if out.TxID == "" {
		return "", errs.Mark(errs.New("ledger response carried no transaction id"), ErrRejected)
	}
	return out.TxID, nil
}

func classify(err error) error {
	code, ok := httpclient.StatusOf(err)
	if !ok {
		// Transport failures and timeouts count as no response.
		return errs.Mark(err, ErrRejected)
	}
	switch {
	case code == http.StatusServiceUnavailable || code == http.StatusUnauthorized:
		return errs.Mark(err, ErrSignerUnavailable)
	case code == http.StatusUnprocessableEntity && strings.Contains(err.Error(), "receiver"):
		return errs.Mark(err, ErrInvalidAddress)
	default:
		return errs.Mark(err, ErrRejected)
	}
}
