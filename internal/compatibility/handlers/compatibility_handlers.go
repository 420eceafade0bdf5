package handlers

import (
	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/burcum/burcum-api/internal/common/middleware"
	"github.com/burcum/burcum-api/internal/compatibility/models"
	"github.com/burcum/burcum-api/internal/compatibility/services"
	"github.com/gin-gonic/gin"

	apperrors "github.com/burcum/burcum-api/internal/common/errors"
)

// Handler serves the compatibility endpoint.
type Handler struct {
	service *services.Service
}

func NewHandler(service *services.Service) *Handler {
	return &Handler{service: service}
}

// Analyze handles POST /compatibility.
func (h *Handler) Analyze(c *gin.Context) {
	var req models.CompatibilityRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, apperrors.BadRequest(messages.Get(messages.KeyBothSignsRequired)))
		return
	}

	result, err := h.service.Analyze(req.Sign1, req.Sign2)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    result,
	})
}
