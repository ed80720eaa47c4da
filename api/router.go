// Package api contains all endpoints available
package api

import (
	"fmt"
	"net/http"
	"net/netip"
	"time"

	"second-brain/api/config"
	"second-brain/api/internal"
	"second-brain/api/pkg/middleware"
	"second-brain/api/pkg/util"
	"second-brain/api/pkg/validators"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const maxBodySize = 1 << 20

type API struct {
	Router *gin.Engine
	Deps   *internal.Deps

	trustedProxies []netip.Prefix
}

func NewRouter(cfg *config.Config, d *internal.Deps) (*API, error) {
	validators.Register()

	trusted, err := util.ParseProxies(cfg.Host.TrustedProxies)
	if err != nil {
		return nil, err
	}

	a := &API{Deps: d, trustedProxies: trusted}

	router := gin.New()
	a.Router = router

	// Forwarded headers from anyone else are ignored, ClientIP falls back to
	// the peer address
	if err := router.SetTrustedProxies(cfg.Host.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies, %w", err)
	}

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == http.MethodHead
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := middleware.UserID(c.Request.Context()); ok {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
		ginzap.RecoveryWithZap(zap.L(), true),
		middleware.BodySizeLimiter(maxBodySize),
	)

	router.HandleMethodNotAllowed = true

	jwt := middleware.NewJWTMiddleware(d.Sessions, d.Accounts)
	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	}).Handler()

	// GET /health			-> Reports whether the database is reachable
	router.GET("/health", a.Health)

	main := router.Group("/api/v1")
	{
		// HEAD /api/v1/heartbeat	-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// GET /api/v1/validate		-> Validates a bearer token
		main.GET("/validate", jwt, a.Validate)

		// POST /api/v1/signup		-> Registers a new user
		main.POST("/signup", limiter, a.UserSignup)

		// POST /api/v1/signin		-> Logs in a user and returns a JWT token
		main.POST("/signin", limiter, a.UserSignin)
	}

	content := main.Group("/content")
	{
		// POST /api/v1/content		-> Saves a new item for the caller
		content.POST("", jwt, a.ContentCreate)

		// GET /api/v1/content		-> Lists the caller's items
		content.GET("", jwt, a.ContentFetch)

		// DELETE /api/v1/content	-> Deletes an item owned by the caller
		content.DELETE("", jwt, a.ContentDelete)

		// POST /api/v1/content/share	-> Creates or returns the share link of an item
		content.POST("/share", jwt, a.ContentShare)

		// GET /api/v1/content/shared/:hash	-> Public view of a shared item
		content.GET("/shared/:hash", a.ContentShared)

		// GET /api/v1/content/shared/:hash/qr	-> QR code of the share link
		content.GET("/shared/:hash/qr", a.ContentSharedQR)
	}

	return a, nil
}
