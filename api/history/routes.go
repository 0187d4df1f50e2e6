package history

import (
	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
)

// RegisterRoutes registers history routes. Every route needs a session.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	router.Use(requireAuth)

	router.GET("", List(deps))
	router.POST("", Create(deps))
	router.GET("/export/json", ExportJSON(deps))
	router.GET("/export/xlsx", ExportXLSX(deps))
	router.GET("/:id", Get(deps))
	router.PUT("/:id", Update(deps))
	router.DELETE("/:id", Delete(deps))
}
