package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/leakwatch/internal/metrics"
)

// RegisterKPIRoutes registers the KPI card endpoint.
//
// GET /api/kpis
// - 200 with the aggregate report
// - 404 when the trip table holds no rows (explicit no-data, never zeros)
// - 503 when the trip store is unreachable (fatal: no dashboard without trips)
func RegisterKPIRoutes(r gin.IRoutes, trips TripSource) {
	r.GET("/api/kpis", func(c *gin.Context) {
		snapshot, err := trips.Trips(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to fetch trip data"})
			return
		}

		report, err := metrics.ComputeKPIs(snapshot)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no trip data"})
			return
		}

		c.JSON(http.StatusOK, report)
	})
}
