package notification

import "time"

type Kind string

const (
	KindExpense Kind = "EXPENSE"
	KindTopUp   Kind = "TOPUP"
)

// Notification is one line in the admin activity feed, written when an
// employee submits a claim or a top-up lands.
type Notification struct {
	ID        string
	Message   string
	Kind      Kind
	Read      bool
	CreatedAt time.Time
}
