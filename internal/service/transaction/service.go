package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/notification"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/treasury"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/database"
)

type TransactionServiceImpl struct {
	transactionRepo transaction.TransactionRepository
	userRepo        user.UserRepository
	treasuryRepo    treasury.TreasuryRepository
	notifier        notification.NotificationService
	runInTx         database.TxRunner
	now             func() time.Time
}

func NewTransactionService(
	transactionRepo transaction.TransactionRepository,
	userRepo user.UserRepository,
	treasuryRepo treasury.TreasuryRepository,
	notifier notification.NotificationService,
	runInTx database.TxRunner,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		treasuryRepo:    treasuryRepo,
		notifier:        notifier,
		runInTx:         runInTx,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source for tests.
func (s *TransactionServiceImpl) WithClock(now func() time.Time) *TransactionServiceImpl {
	s.now = now
	return s
}

func (s *TransactionServiceImpl) occurredOn(dateStr string) time.Time {
	if dateStr != "" {
		if parsed, err := time.Parse("2006-01-02", dateStr); err == nil {
			return parsed
		}
	}
	return s.now().Truncate(24 * time.Hour)
}

// SubmitExpense implements transaction.TransactionService. The request is
// the user-edited claim - an OCR draft only ever reaches this point after the
// employee confirmed or corrected it.
func (s *TransactionServiceImpl) SubmitExpense(ctx context.Context, req transaction.SubmitExpenseRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	act, err := actor.FromContext(ctx)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, act.UserID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	var items []transaction.LineItem
	for _, item := range req.LineItems {
		items = append(items, transaction.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	data := transaction.Transaction{
		UserID:     u.ID,
		UserName:   u.Name,
		Amount:     req.Amount,
		Kind:       transaction.KindExpense,
		Settlement: transaction.SettlementMethod(req.Settlement),
		Status:     transaction.StatusPending,
		Vendor:     req.Vendor,
		Category:   transaction.NormalizeCategory(req.Category),
		CardLast4:  req.CardLast4,
		LineItems:  items,
		ReceiptRef: req.ReceiptRef,
		OccurredOn: s.occurredOn(req.OccurredOn),
	}

	created, err := s.transactionRepo.Create(ctx, data)
	if err != nil {
		return transaction.TransactionResponse{}, fmt.Errorf("failed to create expense: %w", err)
	}

	s.notifier.Notify(ctx, notification.KindExpense,
		fmt.Sprintf("%s spent %s AED at %s", u.Name, created.Amount.StringFixed(2), created.Vendor))

	return transaction.ToResponse(created), nil
}

// RequestTopUp implements transaction.TransactionService.
func (s *TransactionServiceImpl) RequestTopUp(ctx context.Context, req transaction.RequestTopUpRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	act, err := actor.FromContext(ctx)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, act.UserID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	data := transaction.Transaction{
		UserID:     u.ID,
		UserName:   u.Name,
		Amount:     req.Amount,
		Kind:       transaction.KindTopUp,
		Settlement: transaction.SettlementCash,
		Status:     transaction.StatusPending,
		Vendor:     "Wallet Top-up Request",
		OccurredOn: s.now().Truncate(24 * time.Hour),
	}

	created, err := s.transactionRepo.Create(ctx, data)
	if err != nil {
		return transaction.TransactionResponse{}, fmt.Errorf("failed to create top-up request: %w", err)
	}

	s.notifier.Notify(ctx, notification.KindTopUp,
		fmt.Sprintf("%s requested a top-up of %s AED", u.Name, created.Amount.StringFixed(2)))

	return transaction.ToResponse(created), nil
}

// GrantDirect implements transaction.TransactionService. The admin path
// bypasses approval: the entry is born COMPLETED and the money moves from
// the company cash pool into the wallet immediately.
func (s *TransactionServiceImpl) GrantDirect(ctx context.Context, req transaction.GrantDirectRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	act, err := actor.FromContext(ctx)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}
	if !act.IsAdmin() {
		return transaction.TransactionResponse{}, user.ErrAdminPrivilegeRequired
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	data := transaction.Transaction{
		UserID:     target.ID,
		UserName:   target.Name,
		Amount:     req.Amount,
		Kind:       transaction.KindTopUp,
		Settlement: transaction.SettlementCash,
		Status:     transaction.StatusCompleted,
		Vendor:     "Direct Top-up",
		OccurredOn: s.now().Truncate(24 * time.Hour),
	}

	var created transaction.Transaction
	err = s.runInTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.transactionRepo.Create(ctx, data)
		if txErr != nil {
			return fmt.Errorf("failed to create direct grant: %w", txErr)
		}
		if _, txErr = s.userRepo.AdjustWallet(ctx, target.ID, req.Amount); txErr != nil {
			return fmt.Errorf("failed to credit wallet: %w", txErr)
		}
		if _, txErr = s.treasuryRepo.Adjust(ctx, req.Amount.Neg()); txErr != nil {
			return fmt.Errorf("failed to debit cash pool: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	s.notifier.Notify(ctx, notification.KindTopUp,
		fmt.Sprintf("%s was given %s AED", target.Name, created.Amount.StringFixed(2)))

	return transaction.ToResponse(created), nil
}

// Decide implements transaction.TransactionService. The PENDING check and
// the status flip are one atomic step, so a second decision on the same id
// fails with ErrNotPending and the balance effect is applied exactly once.
func (s *TransactionServiceImpl) Decide(ctx context.Context, req transaction.DecideRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	act, err := actor.FromContext(ctx)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}
	if !act.IsAdmin() {
		return transaction.TransactionResponse{}, user.ErrAdminPrivilegeRequired
	}

	target := transaction.StatusApproved
	if req.Decision == string(transaction.DecisionReject) {
		target = transaction.StatusRejected
	}

	var decided transaction.Transaction
	err = s.runInTx(ctx, func(ctx context.Context) error {
		var txErr error
		decided, txErr = s.transactionRepo.UpdateStatus(ctx, req.ID, transaction.StatusPending, target, s.now())
		if txErr != nil {
			return txErr
		}
		if target != transaction.StatusApproved {
			return nil
		}
		switch {
		case decided.Kind == transaction.KindExpense && decided.Settlement == transaction.SettlementCash:
			// The company reimburses out-of-pocket cash; the wallet is
			// debited back toward the reconciled state.
			_, txErr = s.userRepo.AdjustWallet(ctx, decided.UserID, decided.Amount.Neg())
		case decided.Kind == transaction.KindTopUp:
			_, txErr = s.userRepo.AdjustWallet(ctx, decided.UserID, decided.Amount)
		}
		// CARD expenses are record-only: the company card already paid.
		return txErr
	})
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	return transaction.ToResponse(decided), nil
}

// DecideBatch implements transaction.TransactionService. Each id is decided
// independently; one already-decided id reports ErrNotPending without
// touching the others.
func (s *TransactionServiceImpl) DecideBatch(ctx context.Context, req transaction.BatchDecideRequest) ([]transaction.BatchOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	outcomes := make([]transaction.BatchOutcome, 0, len(req.IDs))
	for _, id := range req.IDs {
		resp, err := s.Decide(ctx, transaction.DecideRequest{ID: id, Decision: req.Decision})
		if err != nil {
			msg := err.Error()
			outcomes = append(outcomes, transaction.BatchOutcome{ID: id, Error: &msg})
			continue
		}
		outcomes = append(outcomes, transaction.BatchOutcome{ID: id, Status: resp.Status})
	}
	return outcomes, nil
}

// List implements transaction.TransactionService.
func (s *TransactionServiceImpl) List(ctx context.Context, filter transaction.Filter) ([]transaction.TransactionResponse, error) {
	act, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !act.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	txs, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	responses := make([]transaction.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, transaction.ToResponse(tx))
	}
	return responses, nil
}

// ListMine implements transaction.TransactionService.
func (s *TransactionServiceImpl) ListMine(ctx context.Context) ([]transaction.TransactionResponse, error) {
	act, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.List(ctx, transaction.Filter{UserID: act.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	responses := make([]transaction.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, transaction.ToResponse(tx))
	}
	return responses, nil
}
