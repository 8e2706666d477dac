package transaction

import "errors"

// Transaction workflow errors. All are recoverable by the caller; no failure
// path leaves a partial mutation behind.
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotPending          = errors.New("transaction has already been decided")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidDecision     = errors.New("decision must be APPROVED or REJECTED")
)
