package notify

import (
	"context"
	"log/slog"

	"skill-swap-core/internal/usecase/shared"
)

// SlogNotifier writes every notification as a structured log line.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Notify(ctx context.Context, msg shared.Notification) {
	attrs := make([]any, 0, len(msg.Fields)+3)
	attrs = append(attrs,
		slog.String("topic", msg.Topic),
		slog.String("notify_level", string(msg.Level)),
	)
	if !msg.Recipient.IsZero() {
		attrs = append(attrs, slog.String("recipient", msg.Recipient.String()))
	}
	for k, v := range msg.Fields {
		attrs = append(attrs, slog.String(k, v))
	}
	n.logger.Log(ctx, levelOf(msg.Level), msg.Message, attrs...)
}

func levelOf(l shared.NotificationLevel) slog.Level {
	switch l {
	case shared.LevelWarning:
		return slog.LevelWarn
	case shared.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type OutboxStore interface {
	Append(ctx context.Context, n shared.Notification) error
}

// OutboxNotifier keeps notifications for polling clients.
type OutboxNotifier struct {
	store OutboxStore
}

func NewOutboxNotifier(store OutboxStore) *OutboxNotifier {
	return &OutboxNotifier{store: store}
}

func (o *OutboxNotifier) Notify(ctx context.Context, msg shared.Notification) {
	if err := o.store.Append(ctx, msg); err != nil {
		slog.Warn("failed to store notification", "topic", msg.Topic, "error", err)
	}
}

// Fanout delivers to every sink in order. Sinks do not acknowledge.
type Fanout []shared.Notifier

func (f Fanout) Notify(ctx context.Context, msg shared.Notification) {
	for _, n := range f {
		n.Notify(ctx, msg)
	}
}
