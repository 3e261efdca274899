package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/leakwatch/internal/metrics"
	"github.com/fleetops/leakwatch/internal/models"
	"github.com/fleetops/leakwatch/internal/refresh"
)

// AlertFeed serves the recent-alert section. Reads go to the alert table at
// most once per refresh interval; faster polling gets the cached feed. This
// is a polling cadence, not a subscription.
type AlertFeed struct {
	src   AlertSource
	gate  *refresh.Gate
	limit int

	mu     sync.Mutex
	cached []models.Alert
	primed bool
}

func NewAlertFeed(src AlertSource, gate *refresh.Gate, limit int) *AlertFeed {
	return &AlertFeed{src: src, gate: gate, limit: limit}
}

// Recent returns the alert feed, re-reading the table only when the gate
// allows. A failed re-read surfaces the error without clobbering the last
// good feed.
func (f *AlertFeed) Recent(ctx context.Context) ([]models.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	due := f.gate.Due(time.Now())
	if f.primed && !due {
		return f.cached, nil
	}

	alerts, err := f.src.RecentAlerts(ctx, f.limit)
	if err != nil {
		return nil, err
	}
	f.cached = alerts
	f.primed = true
	return alerts, nil
}

// RegisterAlertRoutes registers the live-alert section endpoints.
//
// GET /api/alerts         recent feed + banner digest
// GET /api/alerts/latest  the webhook slot, 204 when empty
//
// Alert store failures degrade this section only; KPI and trip endpoints are
// unaffected.
func RegisterAlertRoutes(r gin.IRoutes, feed *AlertFeed, slot LatestAlertSource) {
	r.GET("/api/alerts", func(c *gin.Context) {
		alerts, err := feed.Recent(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not load alerts"})
			return
		}
		if alerts == nil {
			alerts = []models.Alert{}
		}

		c.JSON(http.StatusOK, gin.H{
			"digest": metrics.DigestAlerts(alerts),
			"alerts": alerts,
		})
	})

	r.GET("/api/alerts/latest", func(c *gin.Context) {
		alert, ok := slot.Latest()
		if !ok {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, alert)
	})
}
