package ingress

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fleetops/leakwatch/internal/models"
)

// NewRouter builds the webhook surface the external detector pushes to.
// It runs on its own port, independent of the dashboard API, so a slow
// dashboard request can never block an alert receipt.
//
// POST /new_alert
// - Body: one alert record as JSON (permissive; unknown fields tolerated)
// - 200 with {success:true} once the alert is durably persisted
// - 400 with {success:false} for non-object bodies; the slot is untouched
func NewRouter(slot *Slot) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/new_alert", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.IngressAck{
				Success: false,
				Message: "unreadable request body",
			})
			return
		}

		alert, err := slot.Store(body)
		if err != nil {
			if errors.Is(err, ErrMalformedPayload) {
				c.JSON(http.StatusBadRequest, models.IngressAck{
					Success: false,
					Message: "payload must be a JSON alert record",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, models.IngressAck{
				Success: false,
				Message: "failed to persist alert",
			})
			return
		}

		log.Printf("alert received: truck=%s trip=%d cost=%.2f", alert.TruckID, alert.TripID, alert.LeakageCostINR)

		c.JSON(http.StatusOK, models.IngressAck{
			Success:   true,
			Message:   "alert received",
			ReceiptID: uuid.New().String(),
		})
	})

	return r
}
