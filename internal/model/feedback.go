package model

// CriterionFeedback is one rubric criterion sub-score with a one-sentence
// justification.
type CriterionFeedback struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// AIFeedback is the structured grade for a written answer: five criteria at
// 20 points each, 100 total. Stored verbatim in user_answers.ai_feedback.
type AIFeedback struct {
	OverallScore float64                      `json:"overall_score"`
	Criteria     map[string]CriterionFeedback `json:"criteria"`
	Summary      string                       `json:"summary"`
}

// GradingCriteria are the required keys of AIFeedback.Criteria, in rubric
// order.
var GradingCriteria = []string{"clarity", "evidence", "completeness", "critical_thinking", "risk_analysis"}

// MCQFeedback is the grade for a multiple-choice answer. The explanation
// triple is only present when the richer AI path produced it.
type MCQFeedback struct {
	IsCorrect         bool   `json:"is_correct"`
	Explanation       string `json:"explanation"`
	WhyWrong          string `json:"why_wrong,omitempty"`
	HowToUnderstand   string `json:"how_to_understand,omitempty"`
	CorrectAnswerText string `json:"correct_answer_explanation,omitempty"`
}

// PitchReview is the fund-manager verdict on a stock pitch.
type PitchReview struct {
	Status   string  `json:"status"` // "approved" or "rejected"
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}
