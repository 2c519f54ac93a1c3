package router

import (
	"github.com/gin-gonic/gin"

	"taskletix.app/intake/internal/http/handler"
)

func ContactRouter(rg *gin.RouterGroup, h *handler.ContactHandler) {
	rg.POST("", h.Submit)
	rg.GET("/schema", h.Schema)
}
