// Package domain mirrors the investment tables. The schema is kept for
// compatibility with downstream consumers; no endpoint in this service
// operates on it.
package domain

import "time"

type InvestmentType string

const (
	InvestmentTypeBond  InvestmentType = "bond"
	InvestmentTypeFD    InvestmentType = "fd"
	InvestmentTypeMF    InvestmentType = "mf"
	InvestmentTypeETF   InvestmentType = "etf"
	InvestmentTypeOther InvestmentType = "other"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
)

type InvestmentProduct struct {
	ID             string
	Name           string
	InvestmentType InvestmentType
	TenureMonths   int
	AnnualYield    float64
	RiskLevel      RiskLevel
	MinInvestment  float64
	MaxInvestment  *float64
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
