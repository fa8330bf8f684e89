package bootstrap

import (
	"hotel-management-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	PricingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
