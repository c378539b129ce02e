package domain

//go:generate mockgen -destination=../../mocks/mock_audit_recorder.go -package=mocks github.com/sahils38/gripinvest-winter-internship/internal/audit/domain Recorder

import "context"

type Recorder interface {
	Record(ctx context.Context, entry *TransactionLog) error
}
