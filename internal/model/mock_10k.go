package model

import (
	"time"
)

// Mock10K holds simplified 10-K narrative sections used as grading and
// pitch-review context.
type Mock10K struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	CompanyID           uint      `json:"company_id" gorm:"not null;index"`
	Symbol              string    `json:"symbol" gorm:"not null;uniqueIndex"`
	BusinessDescription string    `json:"business_description" gorm:"type:text;not null"`
	RiskFactors         string    `json:"risk_factors" gorm:"type:text;not null"`
	FinancialDiscussion string    `json:"financial_discussion" gorm:"type:text;not null"`
	FiscalYear          int       `json:"fiscal_year"`
	CreatedAt           time.Time `json:"created_at"`
}
