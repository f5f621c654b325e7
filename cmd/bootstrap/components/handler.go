package components

import (
	"roadside-marketplace/internal/handler"
	"roadside-marketplace/internal/handler/api"
	"roadside-marketplace/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRequestHandler,
		api.NewPartnerHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, req *api.RequestHandler, partner *api.PartnerHandler, admin *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Request: req, Partner: partner, Admin: admin}
		},
	),
	fx.Invoke(handler.NewRouter),
)
