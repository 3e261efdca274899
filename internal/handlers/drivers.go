package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/leakwatch/internal/metrics"
)

// RegisterDriverRoutes registers the driver performance table endpoint.
//
// GET /api/drivers
// - Rows sorted by total leakage cost descending, driver ID as tie-break
func RegisterDriverRoutes(r gin.IRoutes, trips TripSource) {
	r.GET("/api/drivers", func(c *gin.Context) {
		snapshot, err := trips.Trips(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to fetch trip data"})
			return
		}

		summary, err := metrics.SummarizeDrivers(snapshot)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no trip data"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"drivers": summary})
	})
}
