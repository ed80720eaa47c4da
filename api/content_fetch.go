package api

import (
	"net/http"

	"second-brain/api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func (a *API) ContentFetch(c *gin.Context) {
	userID, _ := middleware.UserID(c.Request.Context())

	contents, err := a.Deps.Contents.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		serverError(c, err, "Failed to fetch contents")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contents": contents,
	})
}
