package services

import (
	"crypto/rand"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/burcum/burcum-api/internal/auth/models"
	"github.com/burcum/burcum-api/internal/auth/repository"
	apperrors "github.com/burcum/burcum-api/internal/common/errors"
	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/burcum/burcum-api/internal/common/ratelimit"
	"github.com/burcum/burcum-api/internal/common/validation"
	"github.com/burcum/burcum-api/internal/zodiac"
	"github.com/burcum/burcum-api/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost            = 12
	sessionTokenLength    = 32
	verificationTokenTTL  = 24 * time.Hour
	verificationTokenSize = 32
)

// Session tokens are 32 alphanumeric characters; reject anything else
// before touching the store.
var sessionTokenPattern = regexp.MustCompile(`^[A-Za-z0-9]{32}$`)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// VerificationSender delivers a freshly minted verification token to
// the user, typically by email. Nil disables delivery; the token is
// then logged at debug level so development setups can still complete
// the verify flow.
type VerificationSender interface {
	SendVerification(email, token string) error
}

// Service implements registration, login and session handling over an
// injected store. The store backend (memory, sqlite, postgres) is
// decided at startup.
type Service struct {
	store         repository.Store
	loginLimiter  *ratelimit.LoginLimiter
	sessionMaxAge time.Duration
	mailer        VerificationSender
}

func NewService(store repository.Store, loginLimiter *ratelimit.LoginLimiter, sessionMaxAge time.Duration) *Service {
	return &Service{
		store:         store,
		loginLimiter:  loginLimiter,
		sessionMaxAge: sessionMaxAge,
	}
}

// SetMailer installs the verification delivery channel.
func (s *Service) SetMailer(mailer VerificationSender) {
	s.mailer = mailer
}

// SessionMaxAge exposes the configured session lifetime for cookies.
func (s *Service) SessionMaxAge() time.Duration {
	return s.sessionMaxAge
}

func randomToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in no state to
		// mint credentials.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf)
}

// Register creates an account, derives the zodiac sign from the birth
// date, and opens a session. The verification token goes out through
// the configured mailer; it is also returned for callers that manage
// delivery themselves.
func (s *Service) Register(req models.RegisterRequest) (*models.User, string, string, error) {
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		return nil, "", "", apperrors.Validation(messages.Get(messages.KeyInvalidCredentials), validation.Describe(fieldErrors))
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, "", "", apperrors.Validation(messages.Get(messages.KeyInvalidCredentials), "birth_date must be YYYY-MM-DD")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", "", apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}

	user := &models.User{
		ID:               uuid.New().String(),
		Email:            strings.ToLower(req.Email),
		PasswordHash:     string(hash),
		Name:             req.Name,
		BirthDate:        req.BirthDate,
		BirthTime:        req.BirthTime,
		BirthCity:        req.BirthCity,
		ZodiacSign:       string(zodiac.SignFromDate(birthDate)),
		SubscriptionTier: "free",
	}

	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, "", "", apperrors.Conflict(messages.Get(messages.KeyEmailExists))
		}
		return nil, "", "", apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}

	verification := &models.VerificationToken{
		Token:     randomToken(verificationTokenSize),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(verificationTokenTTL),
	}
	if err := s.store.CreateVerificationToken(verification); err != nil {
		logger.Warn("failed to store verification token", zap.String("user_id", user.ID), zap.Error(err))
	} else if s.mailer != nil {
		// Delivery is best effort; the user can request a resend.
		if err := s.mailer.SendVerification(user.Email, verification.Token); err != nil {
			logger.Warn("failed to send verification token", zap.String("user_id", user.ID), zap.Error(err))
		}
	} else {
		logger.Debug("verification token issued", zap.String("user_id", user.ID), zap.String("token", verification.Token))
	}

	sessionID, err := s.openSession(user.ID)
	if err != nil {
		return nil, "", "", err
	}

	logger.Info("user registered", zap.String("user_id", user.ID), zap.String("zodiac_sign", user.ZodiacSign))
	return user, sessionID, verification.Token, nil
}

// Login authenticates by email and password. Attempts are counted per
// client IP; the 5th consecutive attempt blocks logins from that IP
// for the configured lockout, and a success clears the counter.
func (s *Service) Login(email, password, clientIP string) (*models.User, string, error) {
	if s.loginLimiter != nil {
		if result := s.loginLimiter.Check(clientIP); !result.Allowed {
			return nil, "", apperrors.TooManyRequests(messages.Get(messages.KeyTooManyLogins), result.RetryAfter)
		}
	}

	user, err := s.store.GetUserByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", apperrors.Unauthorized(messages.Get(messages.KeyUserNotFound))
		}
		return nil, "", apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized(messages.Get(messages.KeyWrongPassword))
	}

	if s.loginLimiter != nil {
		s.loginLimiter.Reset(clientIP)
	}

	sessionID, err := s.openSession(user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, sessionID, nil
}

func (s *Service) openSession(userID string) (string, error) {
	session := &models.Session{
		ID:        randomToken(sessionTokenLength),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.sessionMaxAge),
	}
	if err := s.store.CreateSession(session); err != nil {
		return "", apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}
	return session.ID, nil
}

// CurrentUser resolves a session token to its user. Expired or unknown
// sessions return nil without error; malformed tokens are rejected
// outright.
func (s *Service) CurrentUser(sessionID string) (*models.User, error) {
	if !sessionTokenPattern.MatchString(sessionID) {
		return nil, nil
	}

	session, err := s.store.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}

	if session.ExpiresAt.Before(time.Now()) {
		_ = s.store.DeleteSession(sessionID)
		return nil, nil
	}

	user, err := s.store.GetUserByID(session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		return nil, apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}
	return user, nil
}

// Logout destroys the session if it exists. Idempotent.
func (s *Service) Logout(sessionID string) {
	if sessionTokenPattern.MatchString(sessionID) {
		_ = s.store.DeleteSession(sessionID)
	}
}

// VerifyEmail consumes a verification token and marks the user's email
// verified.
func (s *Service) VerifyEmail(token string) (*models.User, error) {
	record, err := s.store.GetVerificationToken(token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, apperrors.BadRequest(messages.Get(messages.KeyInvalidVerifyToken))
		}
		return nil, apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}

	if record.ExpiresAt.Before(time.Now()) {
		_ = s.store.DeleteVerificationToken(token)
		return nil, apperrors.BadRequest(messages.Get(messages.KeyVerifyTokenExpired))
	}

	user, err := s.store.GetUserByID(record.UserID)
	if err != nil {
		return nil, apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}

	now := time.Now()
	user.EmailVerifiedAt = &now
	if err := s.store.UpdateUser(user); err != nil {
		return nil, apperrors.Internal(messages.Get(messages.KeyInternalError), err.Error())
	}

	_ = s.store.DeleteVerificationToken(token)
	return user, nil
}

// TrackReading bumps the user's daily reading counter, resetting it on
// the first reading of a new day.
func (s *Service) TrackReading(user *models.User) error {
	today := time.Now().Format("2006-01-02")

	if user.LastReadingDate == nil || *user.LastReadingDate != today {
		user.DailyReadingsCount = 1
	} else {
		user.DailyReadingsCount++
	}
	user.LastReadingDate = &today

	return s.store.UpdateUser(user)
}

// CleanupExpiredSessions removes lapsed sessions from the store.
func (s *Service) CleanupExpiredSessions() (int64, error) {
	return s.store.DeleteExpiredSessions()
}
