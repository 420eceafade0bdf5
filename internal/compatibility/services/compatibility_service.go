package services

import (
	"fmt"
	"time"

	"github.com/burcum/burcum-api/internal/common/cache"
	apperrors "github.com/burcum/burcum-api/internal/common/errors"
	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/burcum/burcum-api/internal/compatibility/models"
	"github.com/burcum/burcum-api/internal/zodiac"
)

const resultTTL = time.Hour

// Service resolves sign input, computes compatibility and caches the
// result. Results are deterministic, so caching is purely an
// optimization; a cold cache yields identical responses.
type Service struct {
	cache *cache.Cache
}

func NewService(resultCache *cache.Cache) *Service {
	return &Service{cache: resultCache}
}

// Analyze resolves both inputs and returns the scored, narrated
// result. Unresolvable input yields a validation error; two valid
// signs can never fail.
func (s *Service) Analyze(input1, input2 string) (*models.Result, error) {
	sign1, ok := zodiac.Resolve(input1)
	if !ok {
		return nil, apperrors.BadRequest(messages.Get(messages.KeyInvalidSign))
	}
	sign2, ok := zodiac.Resolve(input2)
	if !ok {
		return nil, apperrors.BadRequest(messages.Get(messages.KeyInvalidSign))
	}

	// Canonical pair order: (a,b) and (b,a) produce one result and
	// share one cache entry.
	if sign2 < sign1 {
		sign1, sign2 = sign2, sign1
	}

	cacheKey := resultCacheKey(sign1, sign2)
	if s.cache != nil {
		if cached, hit := s.cache.Get(cacheKey); hit {
			if result, valid := cached.(*models.Result); valid {
				return result, nil
			}
		}
	}

	score := Calculate(sign1, sign2)
	analysis := Describe(sign1, sign2, score)

	profile1 := zodiac.MustLookup(sign1)
	profile2 := zodiac.MustLookup(sign2)

	result := &models.Result{
		ID:        fmt.Sprintf("%s-%s", sign1, sign2),
		Sign1:     string(sign1),
		Sign2:     string(sign2),
		Sign1Name: profile1.TurkishName,
		Sign2Name: profile2.TurkishName,
		Score:     score,
		Analysis:  analysis,
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, result, resultTTL)
	}

	return result, nil
}

// resultCacheKey orders the pair so both request orders share one
// entry. The cached narrative names the signs in canonical order; the
// scores are order-independent.
func resultCacheKey(a, b zodiac.Sign) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("compatibility:%s:%s", a, b)
}
