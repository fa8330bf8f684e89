package bootstrap

import (
	"log/slog"

	"hotel-management-api/internal/domain/pricing"
	"hotel-management-api/internal/domain/reservation"
	"hotel-management-api/internal/pkg/config"
	"hotel-management-api/internal/pkg/errs"

	"go.uber.org/fx"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		NewCalculator,
		NewReservationFactory,
	),
)

func NewCalculator(cfg config.Config, logger *slog.Logger) (*pricing.Calculator, error) {
	policy := pricing.Policy(cfg.Pricing.RoomPolicy)
	pricer, err := pricing.NewRoomPricer(policy)
	if err != nil {
		return nil, errs.Wrap(err, "invalid PRICING_ROOM_POLICY "+cfg.Pricing.RoomPolicy)
	}
	if policy == pricing.PolicyLegacyFlatRate {
		logger.Warn("legacy flat-rate room pricing is enabled; stays spanning weekdays and weekends will be mispriced")
	}
	return pricing.NewCalculator(pricer), nil
}

func NewReservationFactory(cfg config.Config) (*reservation.Factory, error) {
	factory, err := reservation.NewFactory(cfg.Pricing.DefaultCheckInTime, cfg.Pricing.DefaultCheckOutTime)
	if err != nil {
		return nil, errs.Wrap(err, "invalid default check-in/check-out time")
	}
	return factory, nil
}
