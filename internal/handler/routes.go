package handler

import "github.com/gin-gonic/gin"

// SetupRoutes registers the API surface. The statistics endpoint sits
// behind the same admin check as the dashboard.
func SetupRoutes(router *gin.Engine, api *API) {
	router.POST("/api/rsvp", api.SubmitRSVP)
	router.POST("/api/analytics", api.TrackVisit)
	router.POST("/api/admin/session", api.CreateSession)

	protected := router.Group("/api")
	protected.Use(AdminAuth(api.admin))
	{
		protected.GET("/rsvp", api.RSVPStats)
		protected.GET("/admin", api.Dashboard)
	}
}
