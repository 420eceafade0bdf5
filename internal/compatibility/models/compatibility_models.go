package models

// CompatibilityRequest is the body of POST /compatibility. Signs are
// case-insensitive and may be Turkish names or English keys.
type CompatibilityRequest struct {
	Sign1 string `json:"sign1" binding:"required"`
	Sign2 string `json:"sign2" binding:"required"`
}

// Score holds the four compatibility sub-scores, each in [0,100].
type Score struct {
	OverallScore    int `json:"overallScore"`
	LoveScore       int `json:"loveScore"`
	FriendshipScore int `json:"friendshipScore"`
	WorkScore       int `json:"workScore"`
}

// Analysis is the narrative companion to a Score.
type Analysis struct {
	Text       string   `json:"analysis"`
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
	Advice     string   `json:"advice"`
}

// Result is the full compatibility response payload.
type Result struct {
	ID        string `json:"id"`
	Sign1     string `json:"sign1"`
	Sign2     string `json:"sign2"`
	Sign1Name string `json:"sign1Name"`
	Sign2Name string `json:"sign2Name"`
	Score
	Analysis
}
