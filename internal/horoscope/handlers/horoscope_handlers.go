package handlers

import (
	authmodels "github.com/burcum/burcum-api/internal/auth/models"
	"github.com/burcum/burcum-api/internal/common/middleware"
	"github.com/burcum/burcum-api/internal/horoscope/models"
	"github.com/burcum/burcum-api/internal/horoscope/services"
	"github.com/burcum/burcum-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReadingTracker records that a user consumed a reading. Implemented
// by the auth service; nil disables tracking.
type ReadingTracker interface {
	TrackReading(user *authmodels.User) error
}

// Handler serves the horoscope endpoints.
type Handler struct {
	service *services.Service
	tracker ReadingTracker
}

func NewHandler(service *services.Service, tracker ReadingTracker) *Handler {
	return &Handler{service: service, tracker: tracker}
}

// Get handles GET /horoscope/:period/:sign.
func (h *Handler) Get(c *gin.Context) {
	period := models.Period(c.Param("period"))
	sign := c.Param("sign")
	user := middleware.UserFromContext(c)

	result, err := h.service.Get(c.Request.Context(), user, period, sign)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	// Tracking is best effort; a failed write never blocks the reading.
	if h.tracker != nil && user != nil && period == models.Daily {
		if trackErr := h.tracker.TrackReading(user); trackErr != nil {
			logger.Warn("reading count update failed", zap.String("user_id", user.ID), zap.Error(trackErr))
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    result.Reading,
		"cached":  result.Cached,
	})
}
