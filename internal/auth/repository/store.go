// Package repository abstracts user and session persistence. Two
// implementations exist: a gorm-backed store (sqlite or postgres) and
// an in-memory store for development and tests. The backend is chosen
// once at startup from configuration; business logic never branches on
// backend type.
package repository

import (
	"errors"

	"github.com/burcum/burcum-api/internal/auth/models"
)

// Sentinel errors shared by all store implementations.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailExists     = errors.New("email already registered")
	ErrSessionNotFound = errors.New("session not found")
	ErrTokenNotFound   = errors.New("verification token not found")
)

// Store is the persistence contract for the auth layer.
type Store interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	UpdateUser(user *models.User) error

	CreateSession(session *models.Session) error
	GetSession(id string) (*models.Session, error)
	DeleteSession(id string) error
	DeleteExpiredSessions() (int64, error)

	CreateVerificationToken(token *models.VerificationToken) error
	GetVerificationToken(token string) (*models.VerificationToken, error)
	DeleteVerificationToken(token string) error
}
