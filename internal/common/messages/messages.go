// Package messages holds every user-facing string in one place so the
// texts can be swapped for another locale without touching logic. The
// built-in set is Turkish; a YAML file given at startup overrides
// individual keys.
package messages

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	KeyBothSignsRequired  = "both_signs_required"
	KeyInvalidSign        = "invalid_sign"
	KeyInvalidPeriod      = "invalid_period"
	KeyInvalidDate        = "invalid_date"
	KeyTooManyRequests    = "too_many_requests"
	KeyTooManyLogins      = "too_many_logins"
	KeyLoginRequired      = "login_required"
	KeyMonthlyPremium     = "monthly_premium_only"
	KeyYearlyPremium      = "yearly_premium_only"
	KeyMonthlyTeaser      = "monthly_teaser"
	KeyYearlyTeaser       = "yearly_teaser"
	KeyEmailExists        = "email_exists"
	KeyUserNotFound       = "user_not_found"
	KeyWrongPassword      = "wrong_password"
	KeyInvalidCredentials = "invalid_credentials"
	KeyRegistered         = "registered"
	KeyLoggedOut          = "logged_out"
	KeyInvalidVerifyToken = "invalid_verify_token"
	KeyVerifyTokenExpired = "verify_token_expired"
	KeyEmailVerified      = "email_verified"
	KeyGenerationFailed   = "generation_failed"
	KeyCompatibilityError = "compatibility_error"
	KeyInternalError      = "internal_error"
)

var defaults = map[string]string{
	KeyBothSignsRequired:  "Her iki burç da gerekli",
	KeyInvalidSign:        "Geçersiz burç",
	KeyInvalidPeriod:      "Geçersiz periyot",
	KeyInvalidDate:        "Geçersiz tarih formatı",
	KeyTooManyRequests:    "Çok fazla istek. Lütfen bekleyin.",
	KeyTooManyLogins:      "Çok fazla başarısız deneme. Lütfen bekleyin.",
	KeyLoginRequired:      "Giriş yapmanız gerekiyor",
	KeyMonthlyPremium:     "Aylık yorumlar Premium üyelere özeldir",
	KeyYearlyPremium:      "Yıllık yorumlar Premium üyelere özeldir",
	KeyMonthlyTeaser:      "Bu ay kariyer ve aşk hayatınızda önemli gelişmeler...",
	KeyYearlyTeaser:       "Bu yıl sizin için büyük değişimler ve fırsatlar getiriyor...",
	KeyEmailExists:        "Bu email adresi zaten kayıtlı",
	KeyUserNotFound:       "Bu email ile kayıtlı hesap bulunamadı",
	KeyWrongPassword:      "Email veya şifre hatalı",
	KeyInvalidCredentials: "Email veya şifre geçersiz",
	KeyRegistered:         "Hesabınız oluşturuldu. Lütfen email adresinizi doğrulayın.",
	KeyLoggedOut:          "Çıkış yapıldı",
	KeyInvalidVerifyToken: "Geçersiz veya süresi dolmuş doğrulama linki",
	KeyVerifyTokenExpired: "Doğrulama linkinin süresi dolmuş",
	KeyEmailVerified:      "Email adresiniz doğrulandı",
	KeyGenerationFailed:   "Yorum oluşturulurken bir hata oluştu",
	KeyCompatibilityError: "Uyumluluk hesaplanırken bir hata oluştu",
	KeyInternalError:      "Bir hata oluştu",
}

var (
	mu        sync.RWMutex
	overrides map[string]string
)

// LoadOverrides replaces individual texts from a YAML file of
// key: text pairs. Missing keys keep their built-in value.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loaded := make(map[string]string)
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	mu.Lock()
	overrides = loaded
	mu.Unlock()
	return nil
}

// Get returns the text for a key. Unknown keys return the key itself
// so a missing entry is visible rather than silent.
func Get(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if overrides != nil {
		if text, ok := overrides[key]; ok {
			return text
		}
	}
	if text, ok := defaults[key]; ok {
		return text
	}
	return key
}
