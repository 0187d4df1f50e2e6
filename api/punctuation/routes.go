package punctuation

import (
	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
)

// RegisterRoutes registers punctuation workspace routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, optionalAuth gin.HandlerFunc) {
	router.POST("/process", optionalAuth, Process(deps))
	router.POST("/stats", Stats(deps))
}
