package model

import (
	"time"
)

const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

// UserProgress is recomputed from the full answer set on every graded
// submission and upserted on (user_id, module_id).
type UserProgress struct {
	ID                   uint       `gorm:"primarykey" json:"id"`
	UserID               string     `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_progress_user_module"`
	ModuleID             string     `json:"module_id" gorm:"not null;uniqueIndex:idx_user_progress_user_module"`
	Status               string     `json:"status" gorm:"default:'not_started'"`
	CompletionPercentage int        `json:"completion_percentage"`
	TotalQuestions       int        `json:"total_questions"`
	CorrectAnswers       int        `json:"correct_answers"`
	AverageScore         float64    `json:"average_score"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	LastAccessedAt       time.Time  `json:"last_accessed_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
