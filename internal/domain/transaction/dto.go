package transaction

import (
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LineItemPayload struct {
	Description string          `json:"description"`
	Quantity    float64         `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type SubmitExpenseRequest struct {
	Amount     decimal.Decimal   `json:"amount"`
	Vendor     string            `json:"vendor"`
	Category   string            `json:"category"`
	Settlement string            `json:"settlement_method"`
	CardLast4  *string           `json:"card_last4,omitempty"`
	LineItems  []LineItemPayload `json:"line_items,omitempty"`
	ReceiptRef *string           `json:"receipt_ref,omitempty"`
	OccurredOn string            `json:"occurred_on"` // YYYY-MM-DD
}

func (r *SubmitExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	// Zero is a degenerate but accepted claim; only negatives are rejected.
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Settlement != string(SettlementCash) && r.Settlement != string(SettlementCard) {
		errs = append(errs, validator.ValidationError{Field: "settlement_method", Message: "must be CASH or CARD"})
	}
	if validator.IsEmpty(r.Vendor) {
		errs = append(errs, validator.ValidationError{Field: "vendor", Message: "is required"})
	}
	if r.OccurredOn != "" {
		if _, ok := validator.IsValidDate(r.OccurredOn); !ok {
			errs = append(errs, validator.ValidationError{Field: "occurred_on", Message: "must be YYYY-MM-DD"})
		}
	}
	for _, item := range r.LineItems {
		if item.Quantity < 0 || item.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "line_items", Message: "quantities and unit prices must be non-negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestTopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r *RequestTopUpRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GrantDirectRequest struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *GrantDirectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	ID       string `json:"-"`
	Decision string `json:"decision"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Decision != string(DecisionApprove) && r.Decision != string(DecisionReject) {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be APPROVED or REJECTED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchDecideRequest struct {
	IDs      []string `json:"ids"`
	Decision string   `json:"decision"`
}

func (r *BatchDecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "at least one transaction id is required"})
	}
	if r.Decision != string(DecisionApprove) && r.Decision != string(DecisionReject) {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be APPROVED or REJECTED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BatchOutcome is the per-item result of a batch decision. One id failing
// does not roll the others back.
type BatchOutcome struct {
	ID     string  `json:"id"`
	Status string  `json:"status"` // resulting status on success
	Error  *string `json:"error,omitempty"`
}

type TransactionResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	UserName   string            `json:"user_name"`
	Amount     decimal.Decimal   `json:"amount"`
	Kind       string            `json:"kind"`
	Settlement string            `json:"settlement_method,omitempty"`
	Status     string            `json:"status"`
	Vendor     string            `json:"vendor"`
	Category   string            `json:"category,omitempty"`
	CardLast4  *string           `json:"card_last4,omitempty"`
	LineItems  []LineItemPayload `json:"line_items,omitempty"`
	ReceiptRef *string           `json:"receipt_ref,omitempty"`
	OccurredOn string            `json:"occurred_on"`
	DecidedAt  *string           `json:"decided_at,omitempty"`
}

func ToResponse(t Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:         t.ID,
		UserID:     t.UserID,
		UserName:   t.UserName,
		Amount:     t.Amount,
		Kind:       string(t.Kind),
		Settlement: string(t.Settlement),
		Status:     string(t.Status),
		Vendor:     t.Vendor,
		Category:   t.Category,
		CardLast4:  t.CardLast4,
		ReceiptRef: t.ReceiptRef,
		OccurredOn: t.OccurredOn.Format("2006-01-02"),
	}
	for _, item := range t.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemPayload{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	if t.DecidedAt != nil {
		formatted := t.DecidedAt.Format("2006-01-02 15:04:05")
		resp.DecidedAt = &formatted
	}
	return resp
}
