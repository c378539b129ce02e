package dto

import (
	"github.com/sahils38/gripinvest-winter-internship/internal/auth/domain"
)

// UserOutput is the sanitized identity projection; the password digest is
// never part of any response body.
type UserOutput struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email"`
	RiskAppetite string `json:"risk_appetite"`
}

func NewUserOutput(user *domain.User) UserOutput {
	return UserOutput{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		RiskAppetite: string(user.RiskAppetite),
	}
}
