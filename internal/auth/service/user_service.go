package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahils38/gripinvest-winter-internship/internal/auth/domain"
	"github.com/sahils38/gripinvest-winter-internship/internal/auth/dto"
	autherror "github.com/sahils38/gripinvest-winter-internship/internal/errors"
	"github.com/sahils38/gripinvest-winter-internship/pkg/constant"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
	}
}

func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		RiskAppetite: domain.RiskAppetiteModerate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenOutput, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password fail identically so the response
	// cannot be used to enumerate registered addresses.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenOutput{
		AccessToken: token,
		TokenType:   constant.TokenTypeBearer,
	}, nil
}

// CurrentUser resolves a bearer token to the user it was issued for.
func (s *UserService) CurrentUser(ctx context.Context, tokenString string) (*domain.User, error) {
	email, err := s.tokenService.Verify(tokenString)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return user, nil
}
