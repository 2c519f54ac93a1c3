package router

import (
	"github.com/gin-gonic/gin"

	"taskletix.app/intake/internal/http/handler"
)

// AdminRouter sets up admin routes
// - /login is public and exchanges the shared password for a bearer token
// - everything else requires a valid bearer token
func AdminRouter(rg *gin.RouterGroup, h *handler.AdminHandler) {
	rg.POST("/login", h.Login)

	authed := rg.Group("")
	authed.Use(h.RequireAdmin())
	{
		authed.GET("/submissions", h.ListSubmissions)
		authed.GET("/export/pdf", h.ExportPDF)
	}
}
