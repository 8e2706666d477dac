package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindExpense Kind = "EXPENSE"
	KindTopUp   Kind = "TOPUP"
)

type SettlementMethod string

const (
	// SettlementCash - the employee paid out of pocket; an approved claim
	// debits the wallet back toward the reconciled state.
	SettlementCash SettlementMethod = "CASH"
	// SettlementCard - the company card already paid; the claim is a record
	// only and never touches the wallet.
	SettlementCard SettlementMethod = "CARD"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCompleted is reachable only at direct-grant creation, never
	// through a decision.
	StatusCompleted Status = "COMPLETED"
)

// IsTerminal reports whether a transaction can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCompleted
}

type LineItem struct {
	Description string
	Quantity    float64
	UnitPrice   decimal.Decimal
}

// Transaction is a ledger entry. Amount is a non-negative magnitude in AED;
// the direction of the wallet effect is derived from Kind, SettlementMethod
// and the decision, never from the sign. Transactions are never deleted.
type Transaction struct {
	ID         string
	UserID     string
	UserName   string // denormalized for display and exports
	Amount     decimal.Decimal
	Kind       Kind
	Settlement SettlementMethod // only meaningful for EXPENSE
	Status     Status
	Vendor     string
	Category   string
	CardLast4  *string
	LineItems  []LineItem
	ReceiptRef *string
	OccurredOn time.Time // the claim's business date, not the submission time
	CreatedAt  time.Time
	DecidedAt  *time.Time
}

type Decision string

const (
	DecisionApprove Decision = "APPROVED"
	DecisionReject  Decision = "REJECTED"
)
