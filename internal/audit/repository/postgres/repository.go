package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sahils38/gripinvest-winter-internship/internal/audit/domain"
)

// DB is the subset of pgxpool.Pool the recorder uses.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(ctx context.Context, entry *domain.TransactionLog) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transaction_logs (user_id, email, endpoint, http_method, status_code, error_message)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.UserID, entry.Email, entry.Endpoint, entry.HTTPMethod,
		entry.StatusCode, entry.ErrorMessage)

	return err
}
