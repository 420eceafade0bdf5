package services

import (
	"context"
	"fmt"
	"time"

	authmodels "github.com/burcum/burcum-api/internal/auth/models"
	"github.com/burcum/burcum-api/internal/common/cache"
	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/burcum/burcum-api/internal/horoscope/models"
	"github.com/burcum/burcum-api/internal/subscription"
	"github.com/burcum/burcum-api/internal/zodiac"
	"github.com/burcum/burcum-api/pkg/logger"
	"go.uber.org/zap"

	apperrors "github.com/burcum/burcum-api/internal/common/errors"
)

// Cache lifetimes per period. Longer periods change less often, so
// their entries live longer.
var cacheTTLs = map[models.Period]time.Duration{
	models.Daily:   time.Hour,
	models.Weekly:  24 * time.Hour,
	models.Monthly: 7 * 24 * time.Hour,
	models.Yearly:  30 * 24 * time.Hour,
}

var premiumActions = map[models.Period]subscription.Action{
	models.Monthly: subscription.MonthlyReadings,
	models.Yearly:  subscription.YearlyReadings,
}

var premiumMessageKeys = map[models.Period]string{
	models.Monthly: messages.KeyMonthlyPremium,
	models.Yearly:  messages.KeyYearlyPremium,
}

var premiumTeaserKeys = map[models.Period]string{
	models.Monthly: messages.KeyMonthlyTeaser,
	models.Yearly:  messages.KeyYearlyTeaser,
}

// Result pairs a reading with whether it came from the cache.
type Result struct {
	Reading *models.Reading
	Cached  bool
}

// Service serves readings with per-period caching and tier gating.
type Service struct {
	generator Generator
	caches    map[models.Period]*cache.Cache
	now       func() time.Time
}

// NewService builds a service with one cache per period, each bounded
// to maxEntries.
func NewService(generator Generator, maxEntries int) *Service {
	caches := make(map[models.Period]*cache.Cache, len(models.Periods))
	for _, period := range models.Periods {
		caches[period] = cache.New(maxEntries)
	}
	return &Service{
		generator: generator,
		caches:    caches,
		now:       time.Now,
	}
}

// PeriodKey returns the timeframe identifier a reading is pinned to:
// the date for daily, the Monday of the week for weekly, the first of
// the month for monthly and the year for yearly.
func PeriodKey(period models.Period, now time.Time) string {
	switch period {
	case models.Daily:
		return now.Format("2006-01-02")
	case models.Weekly:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday belongs to the week that started the previous Monday
		}
		monday := now.AddDate(0, 0, 1-weekday)
		return monday.Format("2006-01-02")
	case models.Monthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	case models.Yearly:
		return now.Format("2006")
	}
	return now.Format("2006-01-02")
}

func (s *Service) checkEntitlement(period models.Period, user *authmodels.User) error {
	action, gated := premiumActions[period]
	if !gated {
		return nil
	}

	if user == nil {
		return apperrors.Unauthorized(messages.Get(messages.KeyLoginRequired))
	}

	check := subscription.CheckLimit(subscription.Tier(user.SubscriptionTier), action, 0)
	if !check.Allowed {
		return apperrors.UpgradeRequired(
			messages.Get(premiumMessageKeys[period]),
			messages.Get(premiumTeaserKeys[period]),
		)
	}
	return nil
}

// Get returns the reading for a sign and period, generating and
// caching it on first request within the timeframe. Monthly and yearly
// readings require a logged-in user whose tier covers them. A failed
// generation is never cached.
func (s *Service) Get(ctx context.Context, user *authmodels.User, period models.Period, signInput string) (*Result, error) {
	if !models.ValidPeriod(period) {
		return nil, apperrors.BadRequest(messages.Get(messages.KeyInvalidPeriod))
	}

	if err := s.checkEntitlement(period, user); err != nil {
		return nil, err
	}

	sign, ok := zodiac.Resolve(signInput)
	if !ok {
		return nil, apperrors.BadRequest(messages.Get(messages.KeyInvalidSign))
	}

	periodKey := PeriodKey(period, s.now())
	cacheKey := fmt.Sprintf("%s:%s:%s", period, sign, periodKey)

	store := s.caches[period]
	if value, hit := store.Get(cacheKey); hit {
		if reading, ok := value.(*models.Reading); ok {
			return &Result{Reading: reading, Cached: true}, nil
		}
	}

	reading, err := s.generator.Generate(ctx, sign, period, periodKey)
	if err != nil {
		logger.Error("horoscope generation failed",
			zap.String("sign", string(sign)),
			zap.String("period", string(period)),
			zap.Error(err),
		)
		return nil, apperrors.Internal(messages.Get(messages.KeyGenerationFailed), "")
	}

	store.Set(cacheKey, reading, cacheTTLs[period])
	return &Result{Reading: reading, Cached: false}, nil
}

// CacheStats reports per-period cache counters for health reporting.
func (s *Service) CacheStats() map[models.Period]cache.Stats {
	stats := make(map[models.Period]cache.Stats, len(s.caches))
	for period, c := range s.caches {
		stats[period] = c.Stats()
	}
	return stats
}
