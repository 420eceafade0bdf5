package handlers

import (
	"time"

	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/burcum/burcum-api/internal/common/middleware"
	"github.com/burcum/burcum-api/internal/zodiac"
	"github.com/gin-gonic/gin"

	apperrors "github.com/burcum/burcum-api/internal/common/errors"
)

// Handler serves the static zodiac reference data.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type signEntry struct {
	Sign zodiac.Sign `json:"sign"`
	zodiac.Profile
}

// ListSigns handles GET /zodiac/signs.
func (h *Handler) ListSigns(c *gin.Context) {
	entries := make([]signEntry, 0, len(zodiac.Signs))
	for _, sign := range zodiac.Signs {
		entries = append(entries, signEntry{Sign: sign, Profile: zodiac.MustLookup(sign)})
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    entries,
	})
}

// GetSign handles GET /zodiac/signs/:sign. Accepts English names and
// Turkish aliases.
func (h *Handler) GetSign(c *gin.Context) {
	sign, ok := zodiac.Resolve(c.Param("sign"))
	if !ok {
		middleware.JSONErrorResponse(c, apperrors.BadRequest(messages.Get(messages.KeyInvalidSign)))
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    signEntry{Sign: sign, Profile: zodiac.MustLookup(sign)},
	})
}

// SignForDate handles GET /zodiac/sign-for-date?date=YYYY-MM-DD.
func (h *Handler) SignForDate(c *gin.Context) {
	raw := c.Query("date")
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		middleware.JSONErrorResponse(c, apperrors.BadRequest(messages.Get(messages.KeyInvalidDate)))
		return
	}

	sign := zodiac.SignFromDate(date)
	c.JSON(200, gin.H{
		"success": true,
		"data": gin.H{
			"date": raw,
			"sign": sign,
		},
	})
}
