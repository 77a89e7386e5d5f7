package dto

import (
	"time"

	"github.com/vesto-learn/vesto-api/internal/model"
)

// DataResponse is the {"data": ...} envelope every success body uses.
type DataResponse struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// GradeResponse is the success payload of the grade endpoint: the persisted
// answer and the feedback record that produced it.
type GradeResponse struct {
	Answer   *model.UserAnswer `json:"answer"`
	Feedback any               `json:"feedback"`
}

// AuthResponse carries the issued session token with the account it belongs to.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// PitchHistoryResponse lists a user's pitch submissions plus their summary
// stats.
type PitchHistoryResponse struct {
	Pitches []model.PitchSubmission `json:"pitches"`
	Stats   any                     `json:"stats"`
}

// InvestResponse pairs the updated pitch with the holding the buy created.
type InvestResponse struct {
	Pitch   *model.PitchSubmission `json:"pitch"`
	Holding *model.UserPortfolio   `json:"holding"`
}

// QuestionResponse hides grading-only fields (correct label, guidance) from
// learners; admins read the model directly.
type QuestionResponse struct {
	ID              uint      `json:"id"`
	ModuleID        string    `json:"module_id"`
	Symbol          string    `json:"symbol,omitempty"`
	QuestionType    string    `json:"question_type"`
	QuestionText    string    `json:"question_text"`
	QuestionContext *string   `json:"question_context,omitempty"`
	Options         any       `json:"options,omitempty"`
	Difficulty      string    `json:"difficulty,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
