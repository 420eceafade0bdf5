package models

import "time"

// Period is a horoscope timeframe.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Periods lists every valid period.
var Periods = []Period{Daily, Weekly, Monthly, Yearly}

// ValidPeriod reports whether p is a known period.
func ValidPeriod(p Period) bool {
	switch p {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Reading is one generated horoscope. JSON keys follow the public API
// contract, which predates this service.
type Reading struct {
	ID           string    `json:"id"`
	ZodiacSign   string    `json:"zodiacSign"`
	ReadingType  Period    `json:"readingType"`
	ReadingDate  string    `json:"readingDate"`
	Content      string    `json:"content"`
	LoveScore    int       `json:"loveScore"`
	CareerScore  int       `json:"careerScore"`
	HealthScore  int       `json:"healthScore"`
	LuckyNumbers []int     `json:"luckyNumbers"`
	LuckyColor   string    `json:"luckyColor"`
	Advice       string    `json:"advice"`
	CreatedAt    time.Time `json:"createdAt"`
}
