package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ     = "mcq"
	QuestionTypeWritten = "written"
)

// Question is module content. Rows are authored once and never mutated by
// user traffic.
type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	ModuleID        string         `json:"module_id" gorm:"not null;index"`
	Symbol          string         `json:"symbol" gorm:"index"`
	QuestionType    string         `json:"question_type" gorm:"not null"` // "mcq" or "written"
	QuestionText    string         `json:"question_text" gorm:"type:text;not null"`
	QuestionContext *string        `json:"question_context,omitempty" gorm:"type:text"`
	Options         datatypes.JSON `json:"options,omitempty"`                   // mcq only: ordered [{label, text}]
	CorrectAnswer   *string        `json:"correct_answer,omitempty"`            // mcq only: option label
	Guidance        *string        `json:"guidance,omitempty" gorm:"type:text"` // written only
	Difficulty      string         `json:"difficulty,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// QuestionOption is one entry of Question.Options.
type QuestionOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}
