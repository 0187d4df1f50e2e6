package proxy

import (
	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
)

// RegisterRoutes registers the passthrough routes under router
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/tokenize", Tokenize(deps))
	router.POST("/tokenize-mt", TokenizeMT(deps))
	router.POST("/ner", NER(deps))
	router.POST("/punctuate", Punctuate(deps))
	router.POST("/translate", Translate(deps))
	router.POST("/hanzi", Hanzi(deps))
}
