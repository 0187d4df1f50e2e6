package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is set at build time
var Version = "dev"

// Info describes the running service.
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Get handles version requests
// @Summary Service version
// @Tags version
// @Produce json
// @Success 200 {object} version.Info
// @Router / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Info{
			Name:        "Hanja Platform API",
			Version:     Version,
			Description: "Punctuation, entity annotation and translation of classical Chinese texts",
			Status:      "running",
		})
	}
}
