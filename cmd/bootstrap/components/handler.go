package components

import (
	"dealvista/internal/handler"
	"dealvista/internal/handler/api"
	"dealvista/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCouponHandler,
		api.NewUserHandler,
		api.NewActivityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
