package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
)

// Get handles health check requests
// @Summary Health check
// @Description Report database connectivity and the state of the inference circuit breakers
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthResponse
// @Failure 503 {object} types.HealthResponse
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Database:     map[string]any{"status": "not configured"},
		}

		status := http.StatusOK
		if deps != nil && deps.DB != nil && deps.DB.DB != nil {
			if err := deps.DB.HealthCheck(); err != nil {
				response.Status = types.StatusError
				response.Database = map[string]any{"status": "unhealthy", "error": err.Error()}
				status = http.StatusServiceUnavailable
			} else {
				response.Database = map[string]any{"status": "healthy"}
			}
		}

		if deps != nil && deps.Breakers != nil {
			if states := deps.Breakers.States(); len(states) > 0 {
				response.Breakers = make(map[string]any, len(states))
				for op, state := range states {
					response.Breakers[op] = state
				}
			}
		}

		c.JSON(status, response)
	}
}
