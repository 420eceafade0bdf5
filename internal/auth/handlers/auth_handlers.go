package handlers

import (
	"net/http"

	"github.com/burcum/burcum-api/internal/auth/models"
	"github.com/burcum/burcum-api/internal/auth/services"
	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/burcum/burcum-api/internal/common/middleware"
	"github.com/gin-gonic/gin"

	apperrors "github.com/burcum/burcum-api/internal/common/errors"
)

// Handler serves the auth endpoints.
type Handler struct {
	service *services.Service
}

func NewHandler(service *services.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, sessionID, int(h.service.SessionMaxAge().Seconds()), "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, apperrors.Validation(messages.Get(messages.KeyInvalidCredentials), err.Error()))
		return
	}

	user, sessionID, _, err := h.service.Register(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	h.setSessionCookie(c, sessionID)
	c.JSON(201, gin.H{
		"success": true,
		"message": messages.Get(messages.KeyRegistered),
		"data":    user.Safe(),
	})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, apperrors.Validation(messages.Get(messages.KeyInvalidCredentials), err.Error()))
		return
	}

	user, sessionID, err := h.service.Login(req.Email, req.Password, c.ClientIP())
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	h.setSessionCookie(c, sessionID)
	c.JSON(200, gin.H{
		"success": true,
		"data":    user.Safe(),
	})
}

// Logout handles POST /auth/logout. Always succeeds, logged in or not.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		h.service.Logout(token)
	}

	h.clearSessionCookie(c)
	c.JSON(200, gin.H{
		"success": true,
		"message": messages.Get(messages.KeyLoggedOut),
	})
}

// Me handles GET /auth/me. Requires AuthRequired.
func (h *Handler) Me(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		middleware.JSONErrorResponse(c, apperrors.Unauthorized(messages.Get(messages.KeyLoginRequired)))
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    user.Safe(),
	})
}

// VerifyEmail handles POST /auth/verify-email.
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, apperrors.BadRequest(messages.Get(messages.KeyInvalidVerifyToken)))
		return
	}

	user, err := h.service.VerifyEmail(req.Token)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": messages.Get(messages.KeyEmailVerified),
		"data":    user.Safe(),
	})
}
