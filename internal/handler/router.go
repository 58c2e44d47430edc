package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"airtime/internal/domain/user"
	"airtime/internal/handler/api"
	"airtime/internal/handler/middleware"
	"airtime/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Payment   *api.PaymentHandler
	AdContent *api.AdContentHandler
	Slot      *api.SlotHandler
	Station   *api.StationHandler
	RJ        *api.RJHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.CreatePayment},
				{Method: http.MethodPost, Path: "/complete/:id", Handler: h.Payment.CompletePayment},
				{Method: http.MethodGet, Path: "/user", Handler: h.Payment.ListUserPayments},
			})
		}

		ads := apiGroup.Group("/ads")
		ads.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ads, []route{
				{Method: http.MethodPost, Path: "/upload", Handler: h.AdContent.Upload},
				{Method: http.MethodGet, Path: "/:bookingId", Handler: h.AdContent.ListByBooking},
			})
		}

		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Slot.ListSlots},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Slot.GetSlot},
				{Method: http.MethodGet, Path: "/station/:stationId", Handler: h.Slot.ListStationSlots},
			})

			slotAdmin := slots.Group("")
			slotAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStation))
			addRoutes(slotAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Slot.CreateSlot},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Slot.UpdateSlot},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Slot.DeleteSlot},
			})
		}

		stations := apiGroup.Group("/stations")
		{
			addRoutes(stations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Station.ListStations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Station.GetStation},
			})

			stationAdmin := stations.Group("")
			stationAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStation))
			addRoutes(stationAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Station.CreateStation},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Station.UpdateStation},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Station.DeleteStation},
			})

			adminOnly := stations.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Station.ApproveStation},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Station.RejectStation},
				{Method: http.MethodGet, Path: "/approvals/pending", Handler: h.Station.ListPendingApprovals},
				{Method: http.MethodGet, Path: "/approvals/rejected", Handler: h.Station.ListRejectedApprovals},
			})
		}

		rjs := apiGroup.Group("/rjs")
		{
			addRoutes(rjs, []route{
				{Method: http.MethodGet, Path: "", Handler: h.RJ.ListRJs},
				{Method: http.MethodGet, Path: "/:id", Handler: h.RJ.GetRJ},
			})

			rjAdmin := rjs.Group("")
			rjAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStation))
			addRoutes(rjAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.RJ.CreateRJ},
				{Method: http.MethodPut, Path: "/:id", Handler: h.RJ.UpdateRJ},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.RJ.DeleteRJ},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
