package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TrackVisit handles POST /api/analytics. Best effort: the response
// never carries more than a success flag, and the client is expected to
// ignore it.
func (a *API) TrackVisit(c *gin.Context) {
	var body struct {
		PagePath  string `json:"page_path"`
		VisitorID string `json:"visitor_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	err := a.visits.LogVisit(c.Request.Context(), body.PagePath, body.VisitorID,
		c.GetHeader("User-Agent"), c.GetHeader("Referer"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
