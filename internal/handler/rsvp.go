package handler

import (
	"errors"
	"net/http"
	"os"

	"panel-rsvp/internal/analytics"
	"panel-rsvp/internal/auth"
	"panel-rsvp/internal/rsvp"
	"panel-rsvp/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// API holds the handlers behind the HTTP surface.
type API struct {
	rsvp   *rsvp.Service
	visits *analytics.Logger
	admin  *auth.Admin
	log    zerolog.Logger
}

// NewAPI creates the API handler set.
func NewAPI(rsvpSvc *rsvp.Service, visits *analytics.Logger, admin *auth.Admin) *API {
	return &API{
		rsvp:   rsvpSvc,
		visits: visits,
		admin:  admin,
		log:    zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger(),
	}
}

// SubmitRSVP handles POST /api/rsvp.
func (a *API) SubmitRSVP(c *gin.Context) {
	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  []string{"Invalid request data"},
		})
		return
	}

	result, err := a.rsvp.Submit(c.Request.Context(), raw)

	var verr *rsvp.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": verr.Errors})
	case errors.Is(err, storage.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "An RSVP with this email already exists",
		})
	case err != nil:
		// Store detail stays in the server log.
		a.log.Error().Err(err).Msg("rsvp submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save RSVP",
		})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "RSVP submitted successfully",
			"data": gin.H{
				"id":     result.ID,
				"name":   result.Name,
				"status": result.Status,
			},
		})
	}
}

// RSVPStats handles GET /api/rsvp.
func (a *API) RSVPStats(c *gin.Context) {
	counts, last, err := a.rsvp.Stats(c.Request.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("stats fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch RSVPs",
		})
		return
	}

	var lastSubmission any
	if last != nil {
		lastSubmission = *last
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"counts":         counts,
		"lastSubmission": lastSubmission,
	})
}
