package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skill-swap-core/internal/handler/api"
	"skill-swap-core/internal/handler/middleware"
	"skill-swap-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler for the router.
type Handlers struct {
	Users         *api.UserHandler
	Skills        *api.SkillHandler
	Bookings      *api.BookingHandler
	Reviews       *api.ReviewHandler
	Sessions      *api.SessionHandler
	Notifications *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.RequestLogging())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	apiGroup := engine.Group("/api")
	{
		users := apiGroup.Group("/users")
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Users.Register, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:identity/reputation", Handler: h.Users.GetReputation},
		})

		skills := apiGroup.Group("/skills")
		addRoutes(skills, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Skills.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "", Handler: h.Skills.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Skills.Get},
			{Method: http.MethodPost, Path: "/:id/bookings", Handler: h.Bookings.Book, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Reviews.Submit, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Reviews.List},
		})

		sessions := apiGroup.Group("/sessions")
		sessions.Use(requireAuth)
		{
			addRoutes(sessions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Sessions.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Sessions.Get},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Sessions.Complete},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Sessions.Cancel},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(requireAuth)
		addRoutes(notifications, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notifications.ListMine},
		})
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
