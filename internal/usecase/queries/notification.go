package queries

import (
	"context"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"
)

type NotificationReadStore interface {
	ListFor(ctx context.Context, recipient identity.Identity) ([]shared.Notification, error)
}

type NotificationQueries interface {
	ListMine(ctx context.Context, sc auth.SessionContext) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListMine(ctx context.Context, sc auth.SessionContext) ([]*NotificationView, error) {
	caller, err := sc.RequireIdentity()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	items, err := q.store.ListFor(ctx, caller)
	if err != nil {
		return nil, err
	}
	views := make([]*NotificationView, len(items))
	for i, n := range items {
		views[i] = &NotificationView{
			Level:   string(n.Level),
			Topic:   n.Topic,
			Message: n.Message,
			Fields:  n.Fields,
			At:      n.At,
		}
	}
	return views, nil
}
