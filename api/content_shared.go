package api

import (
	"errors"
	"net/http"

	"second-brain/api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

func (a *API) ContentShared(c *gin.Context) {
	shared, err := a.Deps.Shares.Resolve(c.Request.Context(), c.Param("hash"))
	if err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			abortWith(c, http.StatusNotFound, "Shared content not found")
			return
		}

		serverError(c, err, "Failed to resolve shared content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shared content retrieved successfully",
		"content": shared,
	})
}

// ContentSharedQR renders the share link of a hash as a PNG QR code
func (a *API) ContentSharedQR(c *gin.Context) {
	hash := c.Param("hash")

	if _, err := a.Deps.Shares.Resolve(c.Request.Context(), hash); err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			abortWith(c, http.StatusNotFound, "Shared content not found")
			return
		}

		serverError(c, err, "Failed to resolve shared content")
		return
	}

	png, err := qrcode.Encode(a.shareableLink(c, hash), qrcode.Medium, qrSize)
	if err != nil {
		serverError(c, err, "Failed to render QR code")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
