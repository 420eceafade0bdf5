// Package subscription defines the tier model gating longer-period
// horoscope content. The limits table is static reference data.
package subscription

// Tier is a subscription level.
type Tier string

const (
	Free    Tier = "free"
	Premium Tier = "premium"
	VIP     Tier = "vip"
)

// Unlimited marks an action without a numeric cap.
const Unlimited = -1

// Action names a countable entitlement.
type Action string

const (
	DailyReadings       Action = "daily_readings"
	WeeklyReadings      Action = "weekly_readings"
	MonthlyReadings     Action = "monthly_readings"
	YearlyReadings      Action = "yearly_readings"
	CompatibilityChecks Action = "compatibility_checks"
)

var limits = map[Tier]map[Action]int{
	Free: {
		DailyReadings:       3,
		WeeklyReadings:      1,
		MonthlyReadings:     0,
		YearlyReadings:      0,
		CompatibilityChecks: 2,
	},
	Premium: {
		DailyReadings:       Unlimited,
		WeeklyReadings:      Unlimited,
		MonthlyReadings:     Unlimited,
		YearlyReadings:      1,
		CompatibilityChecks: Unlimited,
	},
	VIP: {
		DailyReadings:       Unlimited,
		WeeklyReadings:      Unlimited,
		MonthlyReadings:     Unlimited,
		YearlyReadings:      Unlimited,
		CompatibilityChecks: Unlimited,
	},
}

// Valid reports whether t is a known tier.
func Valid(t Tier) bool {
	_, ok := limits[t]
	return ok
}

// LimitCheck is the outcome of a limit lookup.
type LimitCheck struct {
	Allowed   bool
	Remaining int // Unlimited when no cap applies
}

// CheckLimit reports whether a tier may perform an action given how
// many times it has already been performed in the current period.
// Unknown tiers are treated as free.
func CheckLimit(tier Tier, action Action, currentCount int) LimitCheck {
	actions, ok := limits[tier]
	if !ok {
		actions = limits[Free]
	}

	limit, ok := actions[action]
	if !ok {
		return LimitCheck{Allowed: false, Remaining: 0}
	}

	if limit == Unlimited {
		return LimitCheck{Allowed: true, Remaining: Unlimited}
	}

	remaining := limit - currentCount
	if remaining < 0 {
		remaining = 0
	}
	return LimitCheck{Allowed: currentCount < limit, Remaining: remaining}
}
