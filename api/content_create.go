package api

import (
	"errors"
	"net/http"

	"second-brain/api/internal/service"
	"second-brain/api/pkg/middleware"
	"second-brain/api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type contentBody struct {
	Link  string `json:"link" binding:"required,url"`
	Type  string `json:"type" binding:"required,contenttype"`
	Title string `json:"title" binding:"required,max=255"`
	Tags  string `json:"tags" binding:"max=1024"`
}

func (a *API) ContentCreate(c *gin.Context) {
	userID, _ := middleware.UserID(c.Request.Context())

	var data contentBody
	if err := c.ShouldBindJSON(&data); err != nil {
		bindFailed(c, err)
		return
	}

	content, err := a.Deps.Contents.Create(c.Request.Context(), userID, service.NewContent{
		Link:  data.Link,
		Type:  data.Type,
		Title: data.Title,
		Tags:  data.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidContentType):
			invalidInputs(c, []validators.FieldError{{
				Field:   "type",
				Rule:    "contenttype",
				Message: validators.ErrContentTypeInvalid.Error(),
			}})
		case errors.Is(err, service.ErrInvalidContent):
			invalidInputs(c, []validators.FieldError{{Rule: "content", Message: err.Error()}})
		default:
			serverError(c, err, "Failed to create content")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content created successfully",
		"content": content,
	})
}
