package components

import (
	"log/slog"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/infra/ledger"
	"skill-swap-core/internal/infra/notify"
	"skill-swap-core/internal/infra/payment"
	"skill-swap-core/internal/infra/registry"
	"skill-swap-core/internal/infra/repository"
	"skill-swap-core/internal/pkg/config"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var AdapterModule = fx.Module("adapter",
	fx.Provide(
		NewLedgerClient,
		NewPaymentExecutors,
		fx.Annotate(
			payment.NewGateway,
			fx.As(new(shared.PaymentGateway)),
		),
		NewContractClient,
		NewNotifier,
	),
)

func NewLedgerClient(cfg config.Config) ledger.Client {
	if cfg.Ledger.Backend == "http" {
		return ledger.NewHTTPClient(cfg.Ledger.URL, cfg.Ledger.Token, cfg.Ledger.Timeout)
	}
	slog.Warn("using in-memory ledger; payments are not real")
	return ledger.NewFake()
}

// NewPaymentExecutors enables the key-based fallback only when a seed is configured.
func NewPaymentExecutors(cfg config.Config, client ledger.Client) (commands.PaymentExecutors, error) {
	executors := commands.PaymentExecutors{Primary: payment.NewWalletExecutor(client)}
	if cfg.Fallback.SignerSeed == "" {
		return executors, nil
	}
	key, err := payment.NewKeyExecutorFromSeed(cfg.Fallback.SignerSeed, client)
	if err != nil {
		return commands.PaymentExecutors{}, err
	}
	executors.Fallback = key
	return executors, nil
}

func NewContractClient(cfg config.Config) shared.ContractClient {
	if cfg.Registry.Backend == "http" {
		return registry.NewHTTP(cfg.Registry.URL, cfg.Registry.Timeout)
	}
	return registry.NewMemory()
}

func NewNotifier(logger *slog.Logger, outbox *repository.NotificationOutbox) shared.Notifier {
	return notify.Fanout{
		notify.NewSlogNotifier(logger),
		notify.NewOutboxNotifier(outbox),
	}
}

func parseEscrow(cfg config.Config, format identity.Format) (identity.Identity, error) {
	if cfg.Booking.EscrowAddress == "" {
		return identity.Identity{}, nil
	}
	return format.Parse(cfg.Booking.EscrowAddress)
}
