package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/leakwatch/internal/metrics"
)

// RegisterInsightRoutes registers the auto-generated insights endpoint.
//
// GET /api/insights?driver=&truck=&suspected_only=
// - Insight values for the filtered view
// - 404 when the filter matches no rows: no data means no insight, not a
//   zero-loss one
func RegisterInsightRoutes(r gin.IRoutes, trips TripSource) {
	r.GET("/api/insights", func(c *gin.Context) {
		filter, err := filterFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		snapshot, err := trips.Trips(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to fetch trip data"})
			return
		}

		filtered := metrics.FilterTrips(snapshot, filter)
		insights, err := metrics.BuildInsights(filtered)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no trips match the current view"})
			return
		}

		c.JSON(http.StatusOK, insights)
	})
}
