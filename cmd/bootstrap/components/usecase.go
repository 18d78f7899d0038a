package components

import (
	"skill-swap-core/internal/domain/booking"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/pkg/config"
	"skill-swap-core/internal/usecase"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"
	"skill-swap-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingPolicy,
	NewListingFee,
	NewEligibilityChecker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserUseCase,
		commands.NewSkillUseCase,
		commands.NewBookingUseCase,
		commands.NewCompletionUseCase,
		commands.NewCancelUseCase,
		commands.NewReviewUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSkillQueries,
		queries.NewSessionQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingPolicy(cfg config.Config, format identity.Format) (commands.BookingPolicy, error) {
	escrow, err := parseEscrow(cfg, format)
	if err != nil {
		return commands.BookingPolicy{}, err
	}
	return commands.BookingPolicy{
		Pricing:       booking.NewPriceCalculator(cfg.Booking.Pricing),
		ReservePolicy: booking.NewReservePolicy(cfg.Booking.ReservePolicy),
		Escrow:        escrow,
	}, nil
}

func NewListingFee(cfg config.Config, format identity.Format) (commands.ListingFee, error) {
	amount, err := cfg.Booking.ListingFeeAmount()
	if err != nil {
		return commands.ListingFee{}, err
	}
	receiver, err := parseEscrow(cfg, format)
	if err != nil {
		return commands.ListingFee{}, err
	}
	return commands.ListingFee{Amount: amount, Receiver: receiver}, nil
}

func NewEligibilityChecker(cfg config.Config, sessions shared.SessionRepository) shared.EligibilityChecker {
	if cfg.Review.RequireCompletedSession {
		return commands.CompletedSessionEligibility{Sessions: sessions}
	}
	return commands.AnyoneEligible{}
}
