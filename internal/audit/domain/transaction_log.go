package domain

import "time"

// TransactionLog is one audit record per inbound HTTP request. Email is only
// set when the request carried a verifiable bearer token; UserID stays NULL
// and exists for schema parity.
type TransactionLog struct {
	ID           int64
	UserID       *string
	Email        *string
	Endpoint     string
	HTTPMethod   string
	StatusCode   int
	ErrorMessage *string
	CreatedAt    time.Time
}
