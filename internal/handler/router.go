package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"festival-flash-sale/internal/domain/user"
	"festival-flash-sale/internal/handler/api"
	"festival-flash-sale/internal/handler/middleware"
	"festival-flash-sale/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Waiting     *api.WaitingHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Admin       *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, logger *slog.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		sales := apiGroup.Group("/sales/:resourceId")
		sales.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sales, []route{
				{Method: http.MethodPost, Path: "/waiting", Handler: h.Waiting.Enqueue},
				{Method: http.MethodGet, Path: "/waiting", Handler: h.Waiting.Rank},
				{Method: http.MethodDelete, Path: "/waiting", Handler: h.Waiting.Leave},
				{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.Reserve},
				{Method: http.MethodPost, Path: "/reservations/:sessionId/confirm", Handler: h.Reservation.Confirm},
			})
		}

		// Gateway callbacks carry a service token with the operator role.
		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator))
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/callback", Handler: h.Payment.Callback},
			})
		}

		admin := apiGroup.Group("/admin/sales/:resourceId")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/stock", Handler: h.Admin.GetStock},
				{Method: http.MethodPut, Path: "/stock", Handler: h.Admin.SetStock},
				{Method: http.MethodPost, Path: "/rollback", Handler: h.Admin.Rollback},
				{Method: http.MethodPost, Path: "/advance", Handler: h.Admin.Advance},
			})
		}
	}
}

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
