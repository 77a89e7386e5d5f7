package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserAnswer records one submission. A resubmission creates a new row; graded
// rows are never updated.
type UserAnswer struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      string         `json:"user_id" gorm:"type:uuid;not null;index:idx_user_answers_user_module"`
	QuestionID  *uint          `json:"question_id,omitempty" gorm:"index"`
	ModuleID    string         `json:"module_id" gorm:"not null;index:idx_user_answers_user_module"`
	Symbol      string         `json:"symbol"`
	AnswerText  string         `json:"answer_text" gorm:"type:text;not null"`
	AIScore     *float64       `json:"ai_score,omitempty"`
	AIFeedback  datatypes.JSON `json:"ai_feedback,omitempty"`
	IsCorrect   *bool          `json:"is_correct,omitempty"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	GradedAt    *time.Time     `json:"graded_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
