package translation

import (
	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
)

// RegisterRoutes registers translation workspace routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, optionalAuth gin.HandlerFunc) {
	origins := []string{"*"}
	if deps.Config != nil {
		origins = nil
		if deps.Config.Security.EnableCORS {
			origins = deps.Config.Security.CORSOrigins
		}
	}

	router.POST("/process", optionalAuth, Process(deps))
	router.POST("/stats", Stats(deps))
	router.GET("/ws", optionalAuth, Socket(deps, NewUpgrader(origins)))
}
