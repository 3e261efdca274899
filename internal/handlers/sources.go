package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/leakwatch/internal/models"
)

// TripSource supplies the session trip snapshot. Implemented by the trip
// cache in production and by fakes in tests.
type TripSource interface {
	Trips(ctx context.Context) ([]models.Trip, error)
}

// TripInvalidator drops the cached snapshot so the next read re-fetches.
type TripInvalidator interface {
	Invalidate()
}

// AlertSource reads the newest rows of the append-only alert table.
type AlertSource interface {
	RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error)
}

// LatestAlertSource exposes the webhook's single-slot state.
type LatestAlertSource interface {
	Latest() (models.Alert, bool)
}

// filterFromQuery maps the drill-down query params onto a trip filter.
// Absent params mean "no restriction", matching the dashboard's "All" option.
func filterFromQuery(c *gin.Context) (models.TripFilter, error) {
	suspected := false
	if raw := strings.TrimSpace(c.Query("suspected_only")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return models.TripFilter{}, errors.New("suspected_only must be a boolean")
		}
		suspected = parsed
	}
	return models.TripFilter{
		Driver:        strings.TrimSpace(c.Query("driver")),
		Truck:         strings.TrimSpace(c.Query("truck")),
		SuspectedOnly: suspected,
	}, nil
}
