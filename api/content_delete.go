package api

import (
	"errors"
	"net/http"

	"second-brain/api/internal/service"
	"second-brain/api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// contentIDBody is shared by every endpoint that acts on a single item
type contentIDBody struct {
	ID string `json:"id" binding:"required,max=64"`
}

func (a *API) ContentDelete(c *gin.Context) {
	userID, _ := middleware.UserID(c.Request.Context())

	var data contentIDBody
	if err := c.ShouldBindJSON(&data); err != nil {
		bindFailed(c, err)
		return
	}

	err := a.Deps.Contents.Delete(c.Request.Context(), userID, data.ID)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			abortWith(c, http.StatusNotFound, "Content not found")
			return
		}

		serverError(c, err, "Failed to delete content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content deleted successfully",
	})
}
