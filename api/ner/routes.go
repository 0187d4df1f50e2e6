package ner

import (
	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
)

// RegisterRoutes registers entity workspace routes. optionalAuth attaches a
// session when present; requireAuth rejects anonymous callers.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, optionalAuth, requireAuth gin.HandlerFunc) {
	router.POST("/process", optionalAuth, Process(deps))
	router.POST("/stats", Stats(deps))
	router.GET("/entity-types", EntityTypes)
	router.POST("/decode", Decode)
	router.POST("/markup", Markup)
	router.GET("/load/:id", requireAuth, Load(deps))
}
