package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, user_id, user_name, amount, kind, settlement_method, status,
	vendor, category, card_last4, line_items, receipt_ref, occurred_on, created_at, decided_at`

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) transaction.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

func scanTransaction(row pgx.Row) (transaction.Transaction, error) {
	var tx transaction.Transaction
	var items []byte
	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.UserName,
		&tx.Amount,
		&tx.Kind,
		&tx.Settlement,
		&tx.Status,
		&tx.Vendor,
		&tx.Category,
		&tx.CardLast4,
		&items,
		&tx.ReceiptRef,
		&tx.OccurredOn,
		&tx.CreatedAt,
		&tx.DecidedAt,
	)
	if err != nil {
		return transaction.Transaction{}, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &tx.LineItems); err != nil {
			return transaction.Transaction{}, fmt.Errorf("decode line items: %w", err)
		}
	}
	return tx, nil
}

// Create implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) Create(ctx context.Context, tx transaction.Transaction) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	var items []byte
	if len(tx.LineItems) > 0 {
		encoded, err := json.Marshal(tx.LineItems)
		if err != nil {
			return transaction.Transaction{}, fmt.Errorf("encode line items: %w", err)
		}
		items = encoded
	}

	insertQuery := `
		INSERT INTO transactions (user_id, user_name, amount, kind, settlement_method, status,
			vendor, category, card_last4, line_items, receipt_ref, occurred_on, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + transactionColumns

	return scanTransaction(q.QueryRow(ctx, insertQuery,
		tx.UserID, tx.UserName, tx.Amount, tx.Kind, tx.Settlement, tx.Status,
		tx.Vendor, tx.Category, tx.CardLast4, items, tx.ReceiptRef, tx.OccurredOn, tx.DecidedAt,
	))
}

// GetByID implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	tx, err := scanTransaction(q.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return transaction.Transaction{}, transaction.ErrTransactionNotFound
		}
		return transaction.Transaction{}, err
	}
	return tx, nil
}

// UpdateStatus implements transaction.TransactionRepository. The WHERE clause
// carries the expected status so the check and the write are one statement;
// under concurrent admins the second decider matches zero rows.
func (r *transactionRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to transaction.Status, decidedAt time.Time) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE transactions
		SET status = $1, decided_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + transactionColumns

	tx, err := scanTransaction(q.QueryRow(ctx, updateQuery, to, decidedAt, id, from))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing row from an already-decided one.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return transaction.Transaction{}, getErr
			}
			return transaction.Transaction{}, transaction.ErrNotPending
		}
		return transaction.Transaction{}, err
	}
	return tx, nil
}

// List implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) List(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", argPos)
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argPos)
		args = append(args, filter.Kind)
		argPos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND occurred_on >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND occurred_on < $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []transaction.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
