package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, propertyHandler *api.PropertyHandler, checkoutHandler *api.CheckoutHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, propertyHandler, checkoutHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.SessionMiddleware())
}

func setupRoutes(engine *gin.Engine, propertyHandler *api.PropertyHandler, checkoutHandler *api.CheckoutHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: propertyHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: propertyHandler.Get},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: propertyHandler.ListReviews},
				{Method: http.MethodPost, Path: "/:id/quote", Handler: propertyHandler.Quote},
				{Method: http.MethodPost, Path: "/:id/reserve", Handler: propertyHandler.Reserve},
			})
		}

		checkoutGroup := apiGroup.Group("/checkout")
		{
			addRoutes(checkoutGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: checkoutHandler.Summary},
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Submit},
			})
		}
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
