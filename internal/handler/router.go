package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dealvista/internal/handler/api"
	"dealvista/internal/handler/middleware"
	"dealvista/internal/pkg/config"
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
	couponHandler *api.CouponHandler,
	userHandler *api.UserHandler,
	activityHandler *api.ActivityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, couponHandler, userHandler, activityHandler, authMiddleware)
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
	couponHandler *api.CouponHandler,
	userHandler *api.UserHandler,
	activityHandler *api.ActivityHandler,
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
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create},
				{Method: http.MethodGet, Path: "/browse", Handler: couponHandler.Browse},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},
				{Method: http.MethodPost, Path: "/:id/redeem", Handler: couponHandler.Redeem},
			})
		}

		users := apiGroup.Group("/users/me")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/points", Handler: userHandler.GetPoints},
				{Method: http.MethodGet, Path: "/stats", Handler: userHandler.GetStats},
				{Method: http.MethodGet, Path: "/coupons", Handler: userHandler.ListCoupons},
				{Method: http.MethodGet, Path: "/redemptions", Handler: userHandler.ListRedemptions},
			})
		}

		logs := apiGroup.Group("/logs")
		logs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(logs, []route{
				{Method: http.MethodGet, Path: "", Handler: activityHandler.ListOwn},
				{Method: http.MethodGet, Path: "/all", Handler: activityHandler.ListAll,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
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
