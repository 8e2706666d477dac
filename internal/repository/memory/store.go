// Package memory is the reference Entity Store: every collection lives in
// process memory, owned exclusively by the Store, with monotonically
// increasing prefixed ids safe for idempotent replay. A single RWMutex gives
// the store its single-writer semantics under the HTTP server's goroutines.
package memory

import (
	"fmt"
	"sync"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/notification"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu sync.RWMutex

	users         map[string]user.User
	transactions  map[string]transaction.Transaction
	records       map[string]attendance.Record
	notifications map[string]notification.Notification

	// Insertion order per collection; List walks these in reverse for
	// newest-first reads.
	userOrder  []string
	txOrder    []string
	recOrder   []string
	notifOrder []string

	cashPool decimal.Decimal

	userSeq  uint64
	txSeq    uint64
	recSeq   uint64
	notifSeq uint64
}

func NewStore(initialCashPool decimal.Decimal) *Store {
	return &Store{
		users:         make(map[string]user.User),
		transactions:  make(map[string]transaction.Transaction),
		records:       make(map[string]attendance.Record),
		notifications: make(map[string]notification.Notification),
		cashPool:      initialCashPool,
	}
}

func (s *Store) nextUserID() string {
	s.userSeq++
	return fmt.Sprintf("u%d", s.userSeq)
}

func (s *Store) nextTransactionID() string {
	s.txSeq++
	return fmt.Sprintf("t%d", s.txSeq)
}

func (s *Store) nextRecordID() string {
	s.recSeq++
	return fmt.Sprintf("a%d", s.recSeq)
}

func (s *Store) nextNotificationID() string {
	s.notifSeq++
	return fmt.Sprintf("n%d", s.notifSeq)
}

func (s *Store) Users() user.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) Transactions() transaction.TransactionRepository {
	return &transactionRepository{store: s}
}

func (s *Store) Attendance() attendance.AttendanceRepository {
	return &attendanceRepository{store: s}
}

func (s *Store) Notifications() notification.NotificationRepository {
	return &notificationRepository{store: s}
}
