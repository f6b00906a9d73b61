package components

import (
	"pupperazi-api/internal/handler"
	"pupperazi-api/internal/handler/api"
	"pupperazi-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLeadHandler,
		api.NewAppointmentHandler,
		api.NewAnalyticsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
