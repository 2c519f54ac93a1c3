package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskletix.app/intake/core/config"
	"taskletix.app/intake/internal/http/handler"
	"taskletix.app/intake/internal/http/middleware"
	"taskletix.app/intake/internal/service"
)

type RouterConfig struct {
	CORS config.CORSConfig
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	// Engine-wide so preflight requests to unregistered OPTIONS routes are answered.
	router.Use(middleware.CORS(cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		contactHandler := handler.NewContactHandler(services.Contact())
		ContactRouter(api.Group("/contact"), contactHandler)

		adminHandler := handler.NewAdminHandler(services.AdminAuth(), services.Submissions())
		AdminRouter(api.Group("/admin"), adminHandler)
	}
}
