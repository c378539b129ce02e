package domain

import "time"

type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "active"
	InvestmentStatusMatured   InvestmentStatus = "matured"
	InvestmentStatusCancelled InvestmentStatus = "cancelled"
)

type Investment struct {
	ID             string
	UserID         string
	ProductID      string
	Amount         float64
	InvestedAt     time.Time
	Status         InvestmentStatus
	ExpectedReturn *float64
	MaturityDate   *time.Time
}
