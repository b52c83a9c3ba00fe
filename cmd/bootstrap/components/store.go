package components

import (
	"log/slog"

	"stayhub/internal/domain/checkout"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/infra/catalog"
	"stayhub/internal/infra/intent"
	"stayhub/internal/infra/reviews"
	"stayhub/internal/infra/sink"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			catalog.NewMemory,
			fx.As(new(queries.PropertyReadStore)),
			fx.As(new(commands.PropertyReader)),
		),
		fx.Annotate(
			reviews.NewMemory,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			intent.NewStore,
			fx.As(new(commands.BookingIntentStore)),
			fx.As(new(queries.IntentReader)),
		),
		NewSink,
		NewPricingEngine,
	),
)

func NewSink(cfg config.Config, logger *slog.Logger) checkout.Sink {
	return sink.NewClient(cfg.Sink, logger)
}

func NewPricingEngine(cfg config.Config) *pricing.Engine {
	return pricing.NewEngine(pricing.FeeSchedule{
		ServiceFeeRate: cfg.Fees.ServiceFeeRate,
		TaxRate:        cfg.Fees.TaxRate,
		BookingFee:     cfg.Fees.BookingFee,
	})
}
