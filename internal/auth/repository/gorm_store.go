package repository

import (
	"errors"
	"time"

	"github.com/burcum/burcum-api/internal/auth/models"
	"gorm.io/gorm"
)

// GormStore persists users and sessions through gorm (sqlite or
// postgres, whichever the connection was opened with).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the auth tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&models.User{}, &models.Session{}, &models.VerificationToken{})
}

func (s *GormStore) CreateUser(user *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailExists
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(user *models.User) error {
	result := s.db.Save(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *GormStore) CreateSession(session *models.Session) error {
	return s.db.Create(session).Error
}

func (s *GormStore) GetSession(id string) (*models.Session, error) {
	var session models.Session
	err := s.db.First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *GormStore) DeleteSession(id string) error {
	return s.db.Delete(&models.Session{}, "id = ?", id).Error
}

func (s *GormStore) DeleteExpiredSessions() (int64, error) {
	result := s.db.Delete(&models.Session{}, "expires_at < ?", time.Now())
	return result.RowsAffected, result.Error
}

func (s *GormStore) CreateVerificationToken(token *models.VerificationToken) error {
	return s.db.Create(token).Error
}

func (s *GormStore) GetVerificationToken(token string) (*models.VerificationToken, error) {
	var record models.VerificationToken
	err := s.db.First(&record, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormStore) DeleteVerificationToken(token string) error {
	return s.db.Delete(&models.VerificationToken{}, "token = ?", token).Error
}
