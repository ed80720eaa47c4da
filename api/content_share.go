package api

import (
	"errors"
	"net/http"

	"second-brain/api/internal/service"
	"second-brain/api/pkg/middleware"
	"second-brain/api/pkg/util"

	"github.com/gin-gonic/gin"
)

const sharedPath = "/api/v1/content/shared/"

func (a *API) shareableLink(c *gin.Context, hash string) string {
	trusted := util.IsTrustedPeer(c.RemoteIP(), a.trustedProxies)
	return util.RequestBaseURL(c.Request, trusted) + sharedPath + hash
}

func (a *API) ContentShare(c *gin.Context) {
	userID, _ := middleware.UserID(c.Request.Context())

	var data contentIDBody
	if err := c.ShouldBindJSON(&data); err != nil {
		bindFailed(c, err)
		return
	}

	link, created, err := a.Deps.Shares.CreateOrGet(c.Request.Context(), userID, data.ID)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			abortWith(c, http.StatusNotFound, "Content not found")
			return
		}

		serverError(c, err, "Failed to share content")
		return
	}

	msg := "Shareable link already exists"
	if created {
		msg = "Shareable link created successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       msg,
		"shareableLink": a.shareableLink(c, link.Hash),
		"hash":          link.Hash,
	})
}
