package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLimit_FreeTierCaps(t *testing.T) {
	check := CheckLimit(Free, DailyReadings, 0)
	assert.True(t, check.Allowed)
	assert.Equal(t, 3, check.Remaining)

	check = CheckLimit(Free, DailyReadings, 3)
	assert.False(t, check.Allowed)
	assert.Equal(t, 0, check.Remaining)
}

func TestCheckLimit_FreeTierHasNoMonthlyAccess(t *testing.T) {
	check := CheckLimit(Free, MonthlyReadings, 0)
	assert.False(t, check.Allowed)

	check = CheckLimit(Free, YearlyReadings, 0)
	assert.False(t, check.Allowed)
}

func TestCheckLimit_PremiumUnlimitedMonthly(t *testing.T) {
	check := CheckLimit(Premium, MonthlyReadings, 1000)
	assert.True(t, check.Allowed)
	assert.Equal(t, Unlimited, check.Remaining)
}

func TestCheckLimit_PremiumYearlyCappedAtOne(t *testing.T) {
	assert.True(t, CheckLimit(Premium, YearlyReadings, 0).Allowed)
	assert.False(t, CheckLimit(Premium, YearlyReadings, 1).Allowed)
}

func TestCheckLimit_VIPUnlimitedEverywhere(t *testing.T) {
	for _, action := range []Action{DailyReadings, WeeklyReadings, MonthlyReadings, YearlyReadings, CompatibilityChecks} {
		check := CheckLimit(VIP, action, 9999)
		assert.True(t, check.Allowed, "action %s", action)
	}
}

func TestCheckLimit_UnknownTierTreatedAsFree(t *testing.T) {
	check := CheckLimit(Tier("platinum"), MonthlyReadings, 0)
	assert.False(t, check.Allowed)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Free))
	assert.True(t, Valid(Premium))
	assert.True(t, Valid(VIP))
	assert.False(t, Valid(Tier("gold")))
}
