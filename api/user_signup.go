package api

import (
	"errors"
	"net/http"

	"second-brain/api/internal/service"
	"second-brain/api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type signupBody struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=8,max=255"`
}

func (a *API) UserSignup(c *gin.Context) {
	var data signupBody
	if err := c.ShouldBindJSON(&data); err != nil {
		bindFailed(c, err)
		return
	}

	userID, err := a.Deps.Accounts.Register(c.Request.Context(), data.Username, data.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			abortWith(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, service.ErrInvalidAccount):
			invalidInputs(c, []validators.FieldError{{Rule: "account", Message: err.Error()}})
		default:
			serverError(c, err, "Failed to register user")
		}
		return
	}

	zap.L().Info("User registered", zap.String("userID", userID))
	c.JSON(http.StatusOK, gin.H{
		"message": "User created successfully",
	})
}
