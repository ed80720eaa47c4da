package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"second-brain/api/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type userIDKey struct{}

// TokenVerifier resolves a bearer token to the user id it was issued for
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserChecker reports whether a user still exists
type UserChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// WithUserID returns a copy of ctx carrying the authenticated user id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user id stored in ctx
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}

// NewJWTMiddleware rejects requests without a valid bearer token for an
// existing user. On success the user id is stored in the request context.
func NewJWTMiddleware(v TokenVerifier, users UserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString("requestID")

		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, requestID)
			return
		}

		userID, err := v.Verify(tokenStr)
		if err != nil {
			zap.L().Debug("Rejected bearer token", zap.Error(err), zap.String("requestID", requestID))
			unauthorized(c, requestID)
			return
		}

		exists, err := users.Exists(c.Request.Context(), userID)
		if err != nil {
			msg := "Internal server error"
			if errors.Is(err, db.ErrUnavailable) {
				msg = "Error connecting to database"
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message":   msg,
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		// Token outlived the account
		if !exists {
			unauthorized(c, requestID)
			return
		}

		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, requestID string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message":   "Unauthorized",
		"requestID": requestID,
	})
}
