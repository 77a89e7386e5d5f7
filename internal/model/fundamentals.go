package model

import (
	"time"
)

// CompanyFundamentals is a point-in-time snapshot of valuation and health
// ratios for one ticker. The latest row per symbol is the one served.
type CompanyFundamentals struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	CompanyID         uint      `json:"company_id" gorm:"not null;index"`
	Symbol            string    `json:"symbol" gorm:"not null;index"`
	PeRatio           *float64  `json:"pe_ratio,omitempty"`
	PbRatio           *float64  `json:"pb_ratio,omitempty"`
	PsRatio           *float64  `json:"ps_ratio,omitempty"`
	ForwardPe         *float64  `json:"forward_pe,omitempty"`
	Roe               *float64  `json:"roe,omitempty"`
	Roa               *float64  `json:"roa,omitempty"`
	GrossMargin       *float64  `json:"gross_margin,omitempty"`
	OperatingMargin   *float64  `json:"operating_margin,omitempty"`
	NetProfitMargin   *float64  `json:"net_profit_margin,omitempty"`
	Ebitda            *float64  `json:"ebitda,omitempty"`
	DebtToEquity      *float64  `json:"debt_to_equity,omitempty"`
	CurrentRatio      *float64  `json:"current_ratio,omitempty"`
	QuickRatio        *float64  `json:"quick_ratio,omitempty"`
	EpsGrowthYoy      *float64  `json:"eps_growth_yoy,omitempty"`
	RevenueGrowthYoy  *float64  `json:"revenue_growth_yoy,omitempty"`
	Beta              *float64  `json:"beta,omitempty"`
	MarketCap         *float64  `json:"market_cap,omitempty"`
	Week52High        *float64  `json:"week_52_high,omitempty"`
	Week52Low         *float64  `json:"week_52_low,omitempty"`
	ExtractedAt       time.Time `json:"extracted_at"`
	CreatedAt         time.Time `json:"created_at"`
}
