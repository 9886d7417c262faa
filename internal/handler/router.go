package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookit/internal/handler/api"
	"bookit/internal/handler/middleware"
	"bookit/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health     *api.HealthHandler
	Experience *api.ExperienceHandler
	Slot       *api.SlotHandler
	Booking    *api.BookingHandler
	Promo      *api.PromoHandler
}

func NewHandlers(
	health *api.HealthHandler,
	experience *api.ExperienceHandler,
	slot *api.SlotHandler,
	booking *api.BookingHandler,
	promo *api.PromoHandler,
) Handlers {
	return Handlers{
		Health:     health,
		Experience: experience,
		Slot:       slot,
		Booking:    booking,
		Promo:      promo,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", h.Health.Health)
	engine.NoRoute(h.Health.NotFound)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Health.Index},
		})

		experiences := apiGroup.Group("/experiences")
		{
			// static segments are registered before :id
			addRoutes(experiences, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Experience.List},
				{Method: http.MethodGet, Path: "/categories", Handler: h.Experience.Categories},
				{Method: http.MethodGet, Path: "/search", Handler: h.Experience.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Experience.Get},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Experience.Slots},
				{Method: http.MethodGet, Path: "/:id/dates", Handler: h.Experience.Dates},
			})
		}

		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Slot.Availability},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			noStore := []gin.HandlerFunc{middleware.NoStore()}
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: noStore},
				{Method: http.MethodGet, Path: "/user/:email", Handler: h.Booking.ListByEmail, Mw: noStore},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get, Mw: noStore},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel, Mw: noStore},
			})
		}

		promo := apiGroup.Group("/promo")
		{
			addRoutes(promo, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: h.Promo.Validate},
				{Method: http.MethodGet, Path: "/active", Handler: h.Promo.Active},
			})
		}
	}
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
