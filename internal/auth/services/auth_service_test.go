package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/burcum/burcum-api/internal/auth/models"
	"github.com/burcum/burcum-api/internal/auth/repository"
	"github.com/burcum/burcum-api/internal/common/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/burcum/burcum-api/internal/common/errors"
)

func newTestService() (*Service, repository.Store) {
	store := repository.NewMemoryStore()
	limiter := ratelimit.NewLogin(5, 15*time.Minute)
	return NewService(store, limiter, 7*24*time.Hour), store
}

func registerRequest(email string) models.RegisterRequest {
	return models.RegisterRequest{
		Email:     email,
		Password:  "correct-horse-9",
		Name:      "Ayşe Yılmaz",
		BirthDate: "1995-04-10",
	}
}

func TestRegisterDerivesZodiacSign(t *testing.T) {
	svc, _ := newTestService()

	user, sessionID, verifyToken, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "aries", user.ZodiacSign)
	assert.Equal(t, "free", user.SubscriptionTier)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{32}$`), sessionID)
	assert.NotEmpty(t, verifyToken)
}

func TestRegisterRejectsBadBirthDate(t *testing.T) {
	svc, _ := newTestService()

	req := registerRequest("ayse@example.com")
	req.BirthDate = "10.04.1995"

	_, _, _, err := svc.Register(req)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, _, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	_, _, _, err = svc.Register(registerRequest("AYSE@example.com"))
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
}

func TestLoginSuccessAndWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	_, _, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	user, sessionID, err := svc.Login("ayse@example.com", "correct-horse-9", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "ayse@example.com", user.Email)
	assert.Len(t, sessionID, 32)

	_, _, err = svc.Login("ayse@example.com", "wrong-password", "10.0.0.1")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Login("nobody@example.com", "whatever1", "10.0.0.1")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestLoginBlockedAfterRepeatedFailures(t *testing.T) {
	svc, _ := newTestService()
	_, _, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	// Attempts 1-4 fail on credentials, the 5th trips the lockout.
	for i := 0; i < 4; i++ {
		_, _, err := svc.Login("ayse@example.com", "wrong-password", "10.0.0.2")
		require.Error(t, err)
		appErr := err.(*apperrors.AppError)
		assert.Equal(t, 401, appErr.Status, "attempt %d", i+1)
	}

	_, _, err = svc.Login("ayse@example.com", "correct-horse-9", "10.0.0.2")
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 429, appErr.Status)
	assert.Greater(t, appErr.RetryAfter, 0)
}

func TestLoginSuccessResetsAttemptCounter(t *testing.T) {
	svc, _ := newTestService()
	_, _, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, loginErr := svc.Login("ayse@example.com", "wrong-password", "10.0.0.3")
		require.Error(t, loginErr)
	}

	_, _, err = svc.Login("ayse@example.com", "correct-horse-9", "10.0.0.3")
	require.NoError(t, err)

	// Counter is cleared, so a fresh run of failures starts from one.
	for i := 0; i < 3; i++ {
		_, _, loginErr := svc.Login("ayse@example.com", "wrong-password", "10.0.0.3")
		require.Error(t, loginErr)
		appErr := loginErr.(*apperrors.AppError)
		assert.Equal(t, 401, appErr.Status, "attempt %d after reset", i+1)
	}
}

func TestLoginLimiterIsPerClient(t *testing.T) {
	svc, _ := newTestService()
	_, _, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, _, _ = svc.Login("ayse@example.com", "wrong-password", "10.0.0.4")
	}

	// A different client is unaffected by the lockout.
	_, _, err = svc.Login("ayse@example.com", "correct-horse-9", "10.0.0.5")
	require.NoError(t, err)
}

type recordingMailer struct {
	email string
	token string
	err   error
}

func (m *recordingMailer) SendVerification(email, token string) error {
	m.email = email
	m.token = token
	return m.err
}

func TestRegisterDeliversVerificationToken(t *testing.T) {
	svc, _ := newTestService()
	mailer := &recordingMailer{}
	svc.SetMailer(mailer)

	_, _, verifyToken, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "ayse@example.com", mailer.email)
	assert.Equal(t, verifyToken, mailer.token)
}

func TestRegisterSucceedsWhenMailerFails(t *testing.T) {
	svc, _ := newTestService()
	svc.SetMailer(&recordingMailer{err: fmt.Errorf("smtp down")})

	user, _, verifyToken, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, user)

	// The token is stored even when delivery fails, so verification
	// can still complete through a resend.
	verified, err := svc.VerifyEmail(verifyToken)
	require.NoError(t, err)
	assert.NotNil(t, verified.EmailVerifiedAt)
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestService()
	registered, sessionID, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	user, err := svc.CurrentUser(sessionID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)
}

func TestCurrentUserRejectsMalformedTokens(t *testing.T) {
	svc, _ := newTestService()

	for _, token := range []string{
		"",
		"short",
		"has spaces has spaces has spaces",
		"'; DROP TABLE sessions; -- padding",
		fmt.Sprintf("%033d", 0), // 33 chars
	} {
		user, err := svc.CurrentUser(token)
		assert.NoError(t, err, "token %q", token)
		assert.Nil(t, user, "token %q", token)
	}
}

func TestCurrentUserExpiredSession(t *testing.T) {
	svc, store := newTestService()
	registered, _, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	expired := &models.Session{
		ID:        "ExpiredSessionToken1234567890abc",
		UserID:    registered.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, store.CreateSession(expired))

	user, err := svc.CurrentUser(expired.ID)
	assert.NoError(t, err)
	assert.Nil(t, user)

	// Expired sessions are removed on lookup.
	_, err = store.GetSession(expired.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _ := newTestService()
	_, sessionID, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	svc.Logout(sessionID)

	user, err := svc.CurrentUser(sessionID)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestVerifyEmail(t *testing.T) {
	svc, _ := newTestService()
	registered, _, verifyToken, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)
	require.Nil(t, registered.EmailVerifiedAt)

	user, err := svc.VerifyEmail(verifyToken)
	require.NoError(t, err)
	require.NotNil(t, user.EmailVerifiedAt)

	// Tokens are single use.
	_, err = svc.VerifyEmail(verifyToken)
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 400, appErr.Status)
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	svc, store := newTestService()
	registered, _, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	expired := &models.VerificationToken{
		Token:     "expired-token",
		UserID:    registered.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, store.CreateVerificationToken(expired))

	_, err = svc.VerifyEmail("expired-token")
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 400, appErr.Status)
}

func TestTrackReadingResetsOnNewDay(t *testing.T) {
	svc, store := newTestService()
	registered, _, _, err := svc.Register(registerRequest("ayse@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.TrackReading(registered))
	assert.Equal(t, 1, registered.DailyReadingsCount)

	require.NoError(t, svc.TrackReading(registered))
	assert.Equal(t, 2, registered.DailyReadingsCount)

	// Simulate the last reading being yesterday.
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	registered.LastReadingDate = &yesterday
	require.NoError(t, store.UpdateUser(registered))

	require.NoError(t, svc.TrackReading(registered))
	assert.Equal(t, 1, registered.DailyReadingsCount)
}

func TestRandomTokenShape(t *testing.T) {
	seen := make(map[string]bool)
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{32}$`)

	for i := 0; i < 50; i++ {
		token := randomToken(32)
		assert.Regexp(t, pattern, token)
		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}
