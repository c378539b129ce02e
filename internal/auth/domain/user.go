package domain

import "time"

// RiskAppetite mirrors the risk_appetite enum in the users table.
type RiskAppetite string

const (
	RiskAppetiteLow      RiskAppetite = "low"
	RiskAppetiteModerate RiskAppetite = "moderate"
	RiskAppetiteHigh     RiskAppetite = "high"
)

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	RiskAppetite RiskAppetite
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
