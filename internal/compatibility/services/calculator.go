package services

import (
	"math"

	"github.com/burcum/burcum-api/internal/compatibility/models"
	"github.com/burcum/burcum-api/internal/zodiac"
)

// Element pairing scores.
const (
	sameElementScore       = 90
	compatibleElementScore = 75
	oppositeElementScore   = 40
	neutralElementScore    = 55
)

// Modality pairing scores.
const (
	sameModalityScore     = 60 // same mode invites friction
	cardinalFixedScore    = 85
	mutablePairingScore   = 70
	sameSignBonus         = 10
	oppositeSignBonus     = 15
	oppositeLoveMultiplier = 1.15
)

// Elements that feed each other: fire↔air, earth↔water.
var compatibleElements = map[zodiac.Element]zodiac.Element{
	zodiac.Fire:  zodiac.Air,
	zodiac.Air:   zodiac.Fire,
	zodiac.Earth: zodiac.Water,
	zodiac.Water: zodiac.Earth,
}

// Elements that clash: fire↔water, earth↔air.
var oppositeElements = map[zodiac.Element]zodiac.Element{
	zodiac.Fire:  zodiac.Water,
	zodiac.Water: zodiac.Fire,
	zodiac.Earth: zodiac.Air,
	zodiac.Air:   zodiac.Earth,
}

// The six 180-degree pairs of the zodiac wheel.
var oppositeSigns = map[zodiac.Sign]zodiac.Sign{
	zodiac.Aries:  zodiac.Libra,
	zodiac.Taurus: zodiac.Scorpio,
	zodiac.Gemini: zodiac.Sagittarius,
	zodiac.Cancer: zodiac.Capricorn,
	zodiac.Leo:    zodiac.Aquarius,
	zodiac.Virgo:  zodiac.Pisces,
}

func elementScore(a, b zodiac.Element) int {
	if a == b {
		return sameElementScore
	}
	if compatibleElements[a] == b {
		return compatibleElementScore
	}
	if oppositeElements[a] == b {
		return oppositeElementScore
	}
	return neutralElementScore
}

func modalityScore(a, b zodiac.Modality) int {
	if a == b {
		return sameModalityScore
	}
	if (a == zodiac.Cardinal && b == zodiac.Fixed) || (a == zodiac.Fixed && b == zodiac.Cardinal) {
		return cardinalFixedScore
	}
	// Remaining combinations all involve mutable.
	return mutablePairingScore
}

// IsOpposite reports whether a and b sit 180 degrees apart.
func IsOpposite(a, b zodiac.Sign) bool {
	return oppositeSigns[a] == b || oppositeSigns[b] == a
}

func clamp(v float64) int {
	rounded := int(math.Round(v))
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}

// Calculate produces the four compatibility scores for a pair of
// signs. Pure and deterministic; any two valid signs yield a result.
// The pair is ordered canonically first, so Calculate(a, b) and
// Calculate(b, a) are always identical.
func Calculate(a, b zodiac.Sign) models.Score {
	if b < a {
		a, b = b, a
	}

	profileA := zodiac.MustLookup(a)
	profileB := zodiac.MustLookup(b)

	element := elementScore(profileA.Element, profileB.Element)
	modality := modalityScore(profileA.Modality, profileB.Modality)

	sameSign := a == b
	opposite := IsOpposite(a, b)

	bonus := 0.0
	if sameSign {
		bonus += sameSignBonus
	}
	if opposite {
		bonus += oppositeSignBonus
	}

	overall := clamp((float64(element)*0.5 + float64(modality)*0.3 + bonus) * 1.1)

	loveMultiplier := 1.0
	if opposite {
		loveMultiplier = oppositeLoveMultiplier
	}
	love := clamp(float64(overall) * loveMultiplier)

	friendshipMultiplier := 0.95
	if sameSign {
		friendshipMultiplier = 1.10
	}
	friendship := clamp(float64(overall) * friendshipMultiplier)

	work := clamp((float64(element)*0.3 + float64(modality)*0.7) * 1.05)

	return models.Score{
		OverallScore:    overall,
		LoveScore:       love,
		FriendshipScore: friendship,
		WorkScore:       work,
	}
}
