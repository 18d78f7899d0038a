package payment

import (
	"context"
	"log/slog"

	"skill-swap-core/internal/domain/identity"
	dompayment "skill-swap-core/internal/domain/payment"
	"skill-swap-core/internal/infra/ledger"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"
)

// Gateway is the single entry point for outgoing payments. It never
// retries; choosing a fallback executor is the caller's decision.
type Gateway struct {
	format identity.Format
}

func NewGateway(format identity.Format) *Gateway {
	return &Gateway{format: format}
}

var _ shared.PaymentGateway = (*Gateway)(nil)

func (g *Gateway) Pay(ctx context.Context, exec shared.PaymentExecutor, p dompayment.Payment) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if _, err := g.format.Parse(p.Sender.String()); err != nil {
		return "", errs.Mark(err, dompayment.ErrInvalidSender)
	}
	if _, err := g.format.Parse(p.Receiver.String()); err != nil {
		return "", dompayment.NewError(dompayment.ReasonInvalidReceiver, "", err)
	}
	if exec == nil {
		return "", dompayment.NewError(dompayment.ReasonSignerUnavailable, "", errs.New("no payment executor configured"))
	}

	txID, err := exec.Execute(ctx, p)
	if err != nil {
		perr := mapError(ctx, exec.Name(), err)
		slog.Warn("payment failed",
			"executor", exec.Name(),
			"reason", perr.Reason,
			"sender", p.Sender.String(),
			"receiver", p.Receiver.String(),
			"amount", p.Amount.String(),
			"error", err)
		return "", perr
	}
	if txID == "" {
		return "", dompayment.NewError(dompayment.ReasonRejectedByNetwork, exec.Name(), errs.New("executor returned no transaction id"))
	}
	slog.Info("payment submitted", "executor", exec.Name(), "tx_id", txID, "amount", p.Amount.String())
	return txID, nil
}

func mapError(ctx context.Context, executor string, err error) *dompayment.Error {
	var perr *dompayment.Error
	if errs.As(err, &perr) {
		return perr
	}
	switch {
	case ctx.Err() != nil || errs.IsAny(err, context.DeadlineExceeded, context.Canceled):
		// No response is treated like a rejection so the attempt terminates.
		return dompayment.NewError(dompayment.ReasonRejectedByNetwork, executor, err)
	case errs.Is(err, ledger.ErrSignerUnavailable):
		return dompayment.NewError(dompayment.ReasonSignerUnavailable, executor, err)
	case errs.Is(err, ledger.ErrInvalidAddress):
		return dompayment.NewError(dompayment.ReasonInvalidReceiver, executor, err)
	default:
		return dompayment.NewError(dompayment.ReasonRejectedByNetwork, executor, err)
	}
}
