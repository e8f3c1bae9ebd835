package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard handles GET /api/admin.
func (a *API) Dashboard(c *gin.Context) {
	snap, err := a.rsvp.Summarize(c.Request.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("dashboard snapshot failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch data",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": snap})
}

// CreateSession handles POST /api/admin/session: exchanges the shared
// secret for a short-lived session token, so the secret itself does not
// need to ride along on every dashboard request.
func (a *API) CreateSession(c *gin.Context) {
	if !a.admin.KeyMatches(c.GetHeader("x-admin-key")) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	token, expiresAt, err := a.admin.IssueToken()
	if err != nil {
		a.log.Error().Err(err).Msg("token issue failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token":     token,
			"expiresAt": expiresAt,
		},
	})
}
