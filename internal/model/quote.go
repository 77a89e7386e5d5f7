package model

import (
	"time"
)

type CompanyQuote struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CompanyID     uint      `json:"company_id" gorm:"not null;index"`
	Symbol        string    `json:"symbol" gorm:"not null;index"`
	CurrentPrice  float64   `json:"current_price" gorm:"not null"`
	Change        *float64  `json:"change,omitempty"`
	PercentChange *float64  `json:"percent_change,omitempty"`
	High          *float64  `json:"high,omitempty"`
	Low           *float64  `json:"low,omitempty"`
	Open          *float64  `json:"open,omitempty"`
	PreviousClose *float64  `json:"previous_close,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
