package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PitchApproved = "approved"
	PitchRejected = "rejected"
	PitchPending  = "pending"
)

// PitchSubmission is immutable once reviewed, except for the investment
// fields populated when an approved pitch is acted on.
type PitchSubmission struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          string         `json:"user_id" gorm:"type:uuid;not null;index"`
	CompanyID       uint           `json:"company_id" gorm:"not null"`
	Symbol          string         `json:"symbol" gorm:"not null"`
	CompanyName     string         `json:"company_name"`
	PitchText       string         `json:"pitch_text" gorm:"type:text;not null"`
	Status          string         `json:"status" gorm:"default:'pending'"`
	AIFeedback      string         `json:"ai_feedback,omitempty" gorm:"type:text"`
	AIScore         *float64       `json:"ai_score,omitempty"`
	Invested        bool           `json:"invested"`
	SharesPurchased *float64       `json:"shares_purchased,omitempty"`
	PurchasePrice   *float64       `json:"purchase_price,omitempty"`
	InvestedAt      *time.Time     `json:"invested_at,omitempty"`
	SubmittedAt     time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
