package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/leakwatch/internal/metrics"
)

// defaultTopN matches the fuel-comparison view's "worst 20 trips" cut.
const defaultTopN = 20

// RegisterTripRoutes registers the trip drill-down endpoints.
//
// GET  /api/trips?driver=&truck=&suspected_only=   filtered detail view
// GET  /api/trips/top?n=                           worst trips by leakage volume
// GET  /api/report.csv?driver=&truck=&suspected_only=  downloadable report
// POST /api/refresh                                drop the session snapshot
func RegisterTripRoutes(r gin.IRoutes, trips TripSource, cache TripInvalidator) {
	r.GET("/api/trips", func(c *gin.Context) {
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
		c.JSON(http.StatusOK, gin.H{
			"total": len(filtered),
			"trips": filtered,
		})
	})

	r.GET("/api/trips/top", func(c *gin.Context) {
		snapshot, err := trips.Trips(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to fetch trip data"})
			return
		}

		n := defaultTopN
		if raw := c.Query("n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
				return
			}
			n = parsed
		}

		c.JSON(http.StatusOK, gin.H{"trips": metrics.TopByLeakageVolume(snapshot, n)})
	})

	r.GET("/api/report.csv", func(c *gin.Context) {
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

		var buf bytes.Buffer
		if err := metrics.WriteReportCSV(&buf, filtered); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="leakage_report.csv"`)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	})

	r.POST("/api/refresh", func(c *gin.Context) {
		cache.Invalidate()
		c.JSON(http.StatusOK, gin.H{"refreshed": true})
	})
}
