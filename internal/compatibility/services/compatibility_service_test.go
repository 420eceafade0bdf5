package services

import (
	"testing"

	"github.com/burcum/burcum-api/internal/common/cache"
	"github.com/burcum/burcum-api/internal/zodiac"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_Deterministic(t *testing.T) {
	for _, a := range zodiac.Signs {
		for _, b := range zodiac.Signs {
			first := Calculate(a, b)
			second := Calculate(a, b)
			assert.Equal(t, first, second, "%s-%s", a, b)
		}
	}
}

func TestCalculate_Symmetric(t *testing.T) {
	for _, a := range zodiac.Signs {
		for _, b := range zodiac.Signs {
			assert.Equal(t, Calculate(a, b), Calculate(b, a), "%s-%s", a, b)
		}
	}
}

func TestCalculate_ScoresInRange(t *testing.T) {
	for _, a := range zodiac.Signs {
		for _, b := range zodiac.Signs {
			score := Calculate(a, b)
			for name, v := range map[string]int{
				"overall":    score.OverallScore,
				"love":       score.LoveScore,
				"friendship": score.FriendshipScore,
				"work":       score.WorkScore,
			} {
				assert.GreaterOrEqual(t, v, 0, "%s %s-%s", name, a, b)
				assert.LessOrEqual(t, v, 100, "%s %s-%s", name, a, b)
			}
		}
	}
}

func TestCalculate_SameSignBonus(t *testing.T) {
	// aries-aries carries the same-sign bonus; aries-leo shares the
	// fire element but not the bonus.
	same := Calculate(zodiac.Aries, zodiac.Aries)
	sameElement := Calculate(zodiac.Aries, zodiac.Leo)

	assert.Greater(t, same.OverallScore, sameElement.OverallScore)
}

func TestCalculate_OppositePairExceedsNeutral(t *testing.T) {
	// aries-libra is an opposite pair; aries-gemini is neither same,
	// same-element nor opposite.
	opposite := Calculate(zodiac.Aries, zodiac.Libra)
	neutral := Calculate(zodiac.Aries, zodiac.Gemini)

	assert.Greater(t, opposite.OverallScore, neutral.OverallScore)
	assert.Greater(t, opposite.LoveScore, neutral.LoveScore)
}

func TestCalculate_KnownValues(t *testing.T) {
	// aries-libra: element fire-air 75, modality cardinal-cardinal 60,
	// opposite +15. overall = round((75*0.5 + 60*0.3 + 15) * 1.1) = 78.
	score := Calculate(zodiac.Aries, zodiac.Libra)
	assert.Equal(t, 78, score.OverallScore)
	assert.Equal(t, 90, score.LoveScore) // round(78 * 1.15)
	assert.Equal(t, 74, score.FriendshipScore)
	assert.Equal(t, 68, score.WorkScore) // round((75*0.3 + 60*0.7) * 1.05)
}

func TestCalculate_SameSignValues(t *testing.T) {
	// aries-aries: element 90, modality 60, +10 same sign.
	// overall = round((90*0.5 + 60*0.3 + 10) * 1.1) = 80.
	score := Calculate(zodiac.Aries, zodiac.Aries)
	assert.Equal(t, 80, score.OverallScore)
	assert.Equal(t, 88, score.FriendshipScore) // round(80 * 1.10)
}

func TestIsOpposite(t *testing.T) {
	assert.True(t, IsOpposite(zodiac.Aries, zodiac.Libra))
	assert.True(t, IsOpposite(zodiac.Libra, zodiac.Aries))
	assert.True(t, IsOpposite(zodiac.Virgo, zodiac.Pisces))
	assert.False(t, IsOpposite(zodiac.Aries, zodiac.Gemini))
	assert.False(t, IsOpposite(zodiac.Aries, zodiac.Aries))
}

func TestDescribe_MirrorTemplate(t *testing.T) {
	score := Calculate(zodiac.Leo, zodiac.Leo)
	analysis := Describe(zodiac.Leo, zodiac.Leo, score)

	assert.Contains(t, analysis.Text, "İki Aslan")
	assert.Contains(t, analysis.Strengths, "Mükemmel anlayış")
	assert.NotEmpty(t, analysis.Advice)
}

func TestDescribe_SameElementTemplate(t *testing.T) {
	score := Calculate(zodiac.Aries, zodiac.Leo)
	analysis := Describe(zodiac.Aries, zodiac.Leo, score)

	assert.Contains(t, analysis.Text, "ateş elementini paylaşır")
	assert.Contains(t, analysis.Strengths, "Doğal uyum")
}

func TestDescribe_ComplementaryTemplate(t *testing.T) {
	score := Calculate(zodiac.Aries, zodiac.Libra)
	assert.GreaterOrEqual(t, score.OverallScore, 70)

	analysis := Describe(zodiac.Aries, zodiac.Libra, score)
	assert.Contains(t, analysis.Text, "birbirini tamamlayan")
}

func TestDescribe_EffortTemplate(t *testing.T) {
	score := Calculate(zodiac.Aries, zodiac.Taurus)
	assert.Less(t, score.OverallScore, 70)

	analysis := Describe(zodiac.Aries, zodiac.Taurus, score)
	assert.Contains(t, analysis.Text, "çaba ve anlayış gerektirir")
}

func TestDescribe_BonusStrengths(t *testing.T) {
	// aries-libra love score is 90, above the 80 threshold.
	score := Calculate(zodiac.Aries, zodiac.Libra)
	analysis := Describe(zodiac.Aries, zodiac.Libra, score)

	assert.Contains(t, analysis.Strengths, "Güçlü romantik çekim")

	// aries-cancer scores stay below every bonus threshold.
	lowScore := Calculate(zodiac.Aries, zodiac.Cancer)
	lowAnalysis := Describe(zodiac.Aries, zodiac.Cancer, lowScore)

	assert.NotContains(t, lowAnalysis.Strengths, "Güçlü romantik çekim")
	assert.NotContains(t, lowAnalysis.Strengths, "İş ortaklığı için ideal")
}

func TestAnalyze_ResolvesAliases(t *testing.T) {
	service := NewService(cache.New(10))

	fromTurkish, err := service.Analyze("Koç", "Terazi")
	assert.Nil(t, err)

	fromEnglish, err := service.Analyze("aries", "libra")
	assert.Nil(t, err)

	assert.Equal(t, fromEnglish.OverallScore, fromTurkish.OverallScore)
	assert.Equal(t, "Koç", fromTurkish.Sign1Name)
	assert.Equal(t, "Terazi", fromTurkish.Sign2Name)
}

func TestAnalyze_InvalidSign(t *testing.T) {
	service := NewService(cache.New(10))

	result, err := service.Analyze("notasign", "aries")

	assert.Nil(t, result)
	assert.NotNil(t, err)
}

func TestAnalyze_OrderIndependent(t *testing.T) {
	service := NewService(cache.New(10))

	ab, err := service.Analyze("aries", "libra")
	assert.Nil(t, err)
	ba, err := service.Analyze("libra", "aries")
	assert.Nil(t, err)

	assert.Equal(t, ab, ba)
}

func TestAnalyze_CachesResult(t *testing.T) {
	resultCache := cache.New(10)
	service := NewService(resultCache)

	_, err := service.Analyze("aries", "libra")
	assert.Nil(t, err)
	assert.Equal(t, 1, resultCache.Size())

	// Second call hits the cache rather than writing a new entry.
	_, err = service.Analyze("libra", "aries")
	assert.Nil(t, err)
	assert.Equal(t, 1, resultCache.Size())
	assert.Equal(t, int64(1), resultCache.Stats().Hits)
}

func TestAnalyze_WorksWithoutCache(t *testing.T) {
	service := NewService(nil)

	result, err := service.Analyze("aries", "libra")

	assert.Nil(t, err)
	assert.NotNil(t, result)
}
