package model

import (
	"time"
)

type Company struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	Symbol            string    `json:"symbol" gorm:"not null;uniqueIndex"`
	Name              string    `json:"name" gorm:"not null"`
	Industry          *string   `json:"industry,omitempty"`
	Sector            *string   `json:"sector,omitempty"`
	MarketCap         *float64  `json:"market_cap,omitempty"`
	SharesOutstanding *float64  `json:"shares_outstanding,omitempty"`
	Exchange          *string   `json:"exchange,omitempty"`
	Country           *string   `json:"country,omitempty"`
	Currency          *string   `json:"currency,omitempty"`
	Website           *string   `json:"website,omitempty"`
	Logo              *string   `json:"logo,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
