package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/sahils38/gripinvest-winter-internship/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	// GetByEmail returns nil, nil when no user has the given email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}
