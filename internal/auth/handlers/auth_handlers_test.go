package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/burcum/burcum-api/internal/auth/repository"
	"github.com/burcum/burcum-api/internal/auth/services"
	"github.com/burcum/burcum-api/internal/common/middleware"
	"github.com/burcum/burcum-api/internal/common/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	limiter := ratelimit.NewLogin(5, 15*time.Minute)
	service := services.NewService(store, limiter, 7*24*time.Hour)
	handler := NewHandler(service)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SessionUser(service))

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.POST("/verify-email", handler.VerifyEmail)
		auth.GET("/me", middleware.AuthRequired(), handler.Me)
	}

	return router
}

func postJSON(router *gin.Engine, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func registerBody(email string) gin.H {
	return gin.H{
		"email":      email,
		"password":   "correct-horse-9",
		"name":       "Ayşe Yılmaz",
		"birth_date": "1995-04-10",
	}
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/v1/auth/register", registerBody("ayse@example.com"))
	require.Equal(t, 201, w.Code)

	cookie := sessionCookie(t, w)
	assert.Len(t, cookie.Value, 32)
	assert.True(t, cookie.HttpOnly)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Email      string `json:"email"`
			ZodiacSign string `json:"zodiac_sign"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ayse@example.com", resp.Data.Email)
	assert.Equal(t, "aries", resp.Data.ZodiacSign)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"email":      "not-an-email",
		"password":   "short",
		"name":       "A",
		"birth_date": "1995-04-10",
	})
	assert.Equal(t, 400, w.Code)
}

func TestLoginRoundTrip(t *testing.T) {
	router := newTestRouter()
	postJSON(router, "/api/v1/auth/register", registerBody("ayse@example.com"))

	w := postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "ayse@example.com",
		"password": "correct-horse-9",
	})
	require.Equal(t, 200, w.Code)
	cookie := sessionCookie(t, w)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.AddCookie(cookie)
	me := httptest.NewRecorder()
	router.ServeHTTP(me, req)

	require.Equal(t, 200, me.Code)
	assert.Contains(t, me.Body.String(), "ayse@example.com")
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter()
	postJSON(router, "/api/v1/auth/register", registerBody("ayse@example.com"))

	w := postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "ayse@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestMeWithoutSession(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}

func TestMeWithGarbageCookie(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "not-a-real-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newTestRouter()
	registered := postJSON(router, "/api/v1/auth/register", registerBody("ayse@example.com"))
	cookie := sessionCookie(t, registered)

	w := postJSON(router, "/api/v1/auth/logout", gin.H{}, cookie)
	require.Equal(t, 200, w.Code)

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	// The old session no longer authenticates.
	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.AddCookie(cookie)
	me := httptest.NewRecorder()
	router.ServeHTTP(me, req)
	assert.Equal(t, 401, me.Code)
}

func TestLogoutWithoutSessionSucceeds(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/v1/auth/logout", gin.H{})
	assert.Equal(t, 200, w.Code)
}
