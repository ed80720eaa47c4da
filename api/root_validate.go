package api

import (
	"net/http"

	"second-brain/api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func (a *API) Validate(c *gin.Context) {
	userID, _ := middleware.UserID(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"userId": userID,
	})
}
