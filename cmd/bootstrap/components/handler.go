package components

import (
	"skill-swap-core/internal/handler"
	"skill-swap-core/internal/handler/api"
	"skill-swap-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewSkillHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewSessionHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		func(
			users *api.UserHandler,
			skills *api.SkillHandler,
			bookings *api.BookingHandler,
			reviews *api.ReviewHandler,
			sessions *api.SessionHandler,
			notifications *api.NotificationHandler,
		) handler.Handlers {
			return handler.Handlers{
				Users:         users,
				Skills:        skills,
				Bookings:      bookings,
				Reviews:       reviews,
				Sessions:      sessions,
				Notifications: notifications,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
