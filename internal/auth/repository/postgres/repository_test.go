package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahils38/gripinvest-winter-internship/internal/auth/domain"
	repo "github.com/sahils38/gripinvest-winter-internship/internal/auth/repository/postgres"
)

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	// --- Setup ---
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	columns := []string{"id", "first_name", "last_name", "email", "password_hash", "risk_appetite", "created_at", "updated_at"}
	userEmail := "a@x.com"

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("user-123", "A", "", userEmail, "digest", domain.RiskAppetiteModerate, time.Now(), time.Now()))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, userEmail, user.Email)
		assert.Equal(t, domain.RiskAppetiteModerate, user.RiskAppetite)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()
	user := &domain.User{
		ID:           "user-123",
		FirstName:    "A",
		Email:        "new@x.com",
		PasswordHash: "new-digest",
		RiskAppetite: domain.RiskAppetiteModerate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.FirstName, user.LastName, user.Email,
				user.PasswordHash, user.RiskAppetite, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, user)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.FirstName, user.LastName, user.Email,
				user.PasswordHash, user.RiskAppetite, user.CreatedAt, user.UpdatedAt).
			WillReturnError(fmt.Errorf("unique violation"))

		err := r.Create(ctx, user)
		assert.Error(t, err)
	})
}
