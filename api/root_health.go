package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) Health(c *gin.Context) {
	if err := a.Deps.Store.HealthCheck(c.Request.Context()); err != nil {
		zap.L().Warn("Health check failed", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
