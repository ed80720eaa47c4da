package api

import (
	"errors"
	"net/http"

	"second-brain/api/internal/service"

	"github.com/gin-gonic/gin"
)

type signinBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *API) UserSignin(c *gin.Context) {
	var data signinBody
	if err := c.ShouldBindJSON(&data); err != nil {
		bindFailed(c, err)
		return
	}

	userID, err := a.Deps.Accounts.Authenticate(c.Request.Context(), data.Username, data.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			abortWith(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		serverError(c, err, "Failed to authenticate user")
		return
	}

	token, err := a.Deps.Sessions.Issue(userID)
	if err != nil {
		serverError(c, err, "Failed to generate JWT auth token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User signed in successfully",
		"token":   token,
	})
}
