package components

import (
	"bookit/internal/handler"
	"bookit/internal/handler/api"
	reqdto "bookit/internal/handler/dto/request"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		reqdto.NewValidator,
		api.NewHealthHandler,
		api.NewExperienceHandler,
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewPromoHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
