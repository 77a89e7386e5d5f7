package model

import (
	"time"
)

// UserPortfolio is one holding per (user, symbol). A second buy of the same
// symbol replaces the row rather than averaging cost basis.
type UserPortfolio struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_portfolios_user_symbol"`
	Symbol          string    `json:"symbol" gorm:"not null;uniqueIndex:idx_user_portfolios_user_symbol"`
	CompanyName     string    `json:"company_name"`
	Shares          float64   `json:"shares" gorm:"not null"`
	BuyPrice        float64   `json:"buy_price" gorm:"not null"`
	BuyDate         time.Time `json:"buy_date"`
	CurrentPrice    *float64  `json:"current_price,omitempty"`
	CurrentValue    *float64  `json:"current_value,omitempty"`
	GainLoss        *float64  `json:"gain_loss,omitempty"`
	GainLossPercent *float64  `json:"gain_loss_percent,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
