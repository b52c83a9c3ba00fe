package components

import (
	"stayhub/internal/handler"
	"stayhub/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPropertyHandler,
		api.NewCheckoutHandler,
	),
	fx.Invoke(handler.NewRouter),
)
