package models

import (
	"time"
)

// User is an account. IDs are random tokens, emails are stored
// lowercased and unique.
type User struct {
	ID                 string     `gorm:"primaryKey;size:36" json:"id"`
	Email              string     `gorm:"unique;not null" json:"email"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	Name               string     `gorm:"not null" json:"name"`
	BirthDate          string     `gorm:"not null" json:"birth_date"` // YYYY-MM-DD
	BirthTime          *string    `json:"birth_time,omitempty"`       // HH:MM
	BirthCity          *string    `json:"birth_city,omitempty"`
	ZodiacSign         string     `gorm:"not null" json:"zodiac_sign"`
	EmailVerifiedAt    *time.Time `json:"email_verified_at,omitempty"`
	SubscriptionTier   string     `gorm:"default:free" json:"subscription_tier"`
	DailyReadingsCount int        `gorm:"default:0" json:"daily_readings_count"`
	LastReadingDate    *string    `json:"last_reading_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Session is a login session. The ID doubles as the cookie token.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// VerificationToken is a pending email verification.
type VerificationToken struct {
	Token     string    `gorm:"primaryKey;size:64" json:"token"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email,max=255"`
	Password  string  `json:"password" binding:"required,min=8,max=128"`
	Name      string  `json:"name" binding:"required,min=2,max=100"`
	BirthDate string  `json:"birth_date" binding:"required"`
	BirthTime *string `json:"birth_time,omitempty"`
	BirthCity *string `json:"birth_city,omitempty" binding:"omitempty,max=200"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest is the body of POST /auth/verify-email.
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// UserResponse is the user payload without credentials.
type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	BirthDate          string     `json:"birth_date"`
	BirthTime          *string    `json:"birth_time,omitempty"`
	BirthCity          *string    `json:"birth_city,omitempty"`
	ZodiacSign         string     `json:"zodiac_sign"`
	EmailVerifiedAt    *time.Time `json:"email_verified_at,omitempty"`
	SubscriptionTier   string     `json:"subscription_tier"`
	DailyReadingsCount int        `json:"daily_readings_count"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Safe strips credentials for API responses.
func (u *User) Safe() UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		BirthDate:          u.BirthDate,
		BirthTime:          u.BirthTime,
		BirthCity:          u.BirthCity,
		ZodiacSign:         u.ZodiacSign,
		EmailVerifiedAt:    u.EmailVerifiedAt,
		SubscriptionTier:   u.SubscriptionTier,
		DailyReadingsCount: u.DailyReadingsCount,
		CreatedAt:          u.CreatedAt,
	}
}
