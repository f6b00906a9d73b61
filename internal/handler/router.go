package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pupperazi-api/internal/domain/user"
	"pupperazi-api/internal/handler/api"
	"pupperazi-api/internal/handler/middleware"
	"pupperazi-api/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	leadHandler *api.LeadHandler,
	appointmentHandler *api.AppointmentHandler,
	analyticsHandler *api.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, leadHandler, appointmentHandler, analyticsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	leadHandler *api.LeadHandler,
	appointmentHandler *api.AppointmentHandler,
	analyticsHandler *api.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Public funnel endpoints used by the marketing site.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/leads", Handler: leadHandler.Submit},
			{Method: http.MethodPost, Path: "/events", Handler: analyticsHandler.RecordEvent},
			{Method: http.MethodGet, Path: "/services", Handler: appointmentHandler.ListServices},
			{Method: http.MethodPost, Path: "/appointments", Handler: appointmentHandler.Create},
		})

		staffRequired := apiGroup.Group("")
		staffRequired.Use(authMiddleware.RequireAuth())
		{
			addRoutes(staffRequired, []route{
				{Method: http.MethodGet, Path: "/leads", Handler: leadHandler.List},
				{Method: http.MethodGet, Path: "/leads/:id", Handler: leadHandler.Get},
				{Method: http.MethodGet, Path: "/appointments", Handler: appointmentHandler.List},
				{Method: http.MethodGet, Path: "/appointments/:id", Handler: appointmentHandler.Get},
				{Method: http.MethodGet, Path: "/analytics/dashboard", Handler: analyticsHandler.Dashboard},
				{Method: http.MethodGet, Path: "/analytics/trends", Handler: analyticsHandler.Trends},
			})

			// Mutating appointment operations are admin-only.
			adminRequired := staffRequired.Group("")
			adminRequired.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminRequired, []route{
				{Method: http.MethodPatch, Path: "/appointments/:id/status", Handler: appointmentHandler.ChangeStatus},
				{Method: http.MethodDelete, Path: "/appointments/:id", Handler: appointmentHandler.Delete},
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
