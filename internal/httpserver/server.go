package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/leakwatch/internal/config"
	"github.com/fleetops/leakwatch/internal/handlers"
	"github.com/fleetops/leakwatch/internal/refresh"
	"github.com/fleetops/leakwatch/internal/store"
	"github.com/fleetops/leakwatch/internal/tripcache"
)

// NewRouter wires the dashboard read API.
// Public: /health, /ready
// Data:   /api/kpis, /api/drivers, /api/trips, /api/trips/top,
//         /api/report.csv, /api/alerts, /api/alerts/latest,
//         /api/insights, /api/refresh
func NewRouter(cfg config.Config, st *store.PostgresStore, cache *tripcache.Cache, slot handlers.LatestAlertSource) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	feed := handlers.NewAlertFeed(st, refresh.NewGate(cfg.RefreshInterval), cfg.AlertsLimit)

	handlers.RegisterKPIRoutes(r, cache)
	handlers.RegisterDriverRoutes(r, cache)
	handlers.RegisterTripRoutes(r, cache, cache)
	handlers.RegisterAlertRoutes(r, feed, slot)
	handlers.RegisterInsightRoutes(r, cache)

	return r
}
