package transaction

import "context"

// TransactionService is the only write path into the ledger. Balance side
// effects are tied to status transitions here and nowhere else:
//
//	EXPENSE/CASH approved  -> wallet -= amount
//	EXPENSE/CARD approved  -> no wallet effect (company card already paid)
//	TOPUP approved         -> wallet += amount
//	any rejection          -> no wallet effect
//	direct grant (admin)   -> created COMPLETED, wallet += amount, cash pool -= amount
type TransactionService interface {
	SubmitExpense(ctx context.Context, req SubmitExpenseRequest) (TransactionResponse, error)
	RequestTopUp(ctx context.Context, req RequestTopUpRequest) (TransactionResponse, error)
	GrantDirect(ctx context.Context, req GrantDirectRequest) (TransactionResponse, error)
	Decide(ctx context.Context, req DecideRequest) (TransactionResponse, error)
	DecideBatch(ctx context.Context, req BatchDecideRequest) ([]BatchOutcome, error)
	List(ctx context.Context, filter Filter) ([]TransactionResponse, error)
	ListMine(ctx context.Context) ([]TransactionResponse, error)
}
