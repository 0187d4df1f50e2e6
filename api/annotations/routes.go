package annotations

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers annotation editor routes
func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/segments", GetSegments)
	router.POST("/render", Render)
	router.POST("/select", Select)
	router.POST("/remove", Remove)
}
