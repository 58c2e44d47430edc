package components

import (
	"airtime/internal/handler"
	"airtime/internal/handler/api"
	"airtime/internal/handler/middleware"
	"airtime/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewAdContentHandler,
		api.NewSlotHandler,
		api.NewStationHandler,
		api.NewRJHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	adContent *api.AdContentHandler,
	slot *api.SlotHandler,
	station *api.StationHandler,
	rj *api.RJHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Booking:   booking,
		Payment:   payment,
		AdContent: adContent,
		Slot:      slot,
		Station:   station,
		RJ:        rj,
	}
}
