package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	reqdto "pickup-scheduler/internal/handler/dto/request"
	"pickup-scheduler/internal/handler/api"
	"pickup-scheduler/internal/handler/middleware"
	"pickup-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	if err := reqdto.RegisterValidators(); err != nil {
		logger.Error("failed to register request validators", "error", err.Error())
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, adminHandler, authMiddleware, rateLimiter)
	setupFrontend(engine, cfg.Frontend.Dir, logger)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{rateLimiter.Limit()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/health", Handler: healthCheck},
			{Method: http.MethodPost, Path: "/validate-order", Handler: bookingHandler.ValidateOrder, Mw: limited},
			{Method: http.MethodGet, Path: "/available-slots", Handler: bookingHandler.AvailableSlots},
			{Method: http.MethodPost, Path: "/book-appointment", Handler: bookingHandler.BookAppointment, Mw: limited},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/logout", Handler: adminHandler.Logout},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/appointments", Handler: adminHandler.ListAppointments},
				{Method: http.MethodDelete, Path: "/appointments/:orderNumber", Handler: adminHandler.CancelAppointment},
				{Method: http.MethodPut, Path: "/appointments/:orderNumber", Handler: adminHandler.RescheduleAppointment},
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
