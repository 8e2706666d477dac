package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/payroll"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
)

// WriteTransactionsCSV renders finalized transactions. Read-only consumer;
// there is no write path back into the store.
func WriteTransactionsCSV(w io.Writer, txs []transaction.TransactionResponse) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "date", "user", "kind", "settlement_method", "status", "vendor", "category", "amount_aed"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, t := range txs {
		row := []string{
			t.ID,
			t.OccurredOn,
			t.UserName,
			t.Kind,
			t.Settlement,
			t.Status,
			t.Vendor,
			t.Category,
			t.Amount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePayrollCSV renders a computed payroll table.
func WritePayrollCSV(w io.Writer, resp payroll.PayrollResponse) error {
	cw := csv.NewWriter(w)

	header := []string{"user_id", "user_name", "base_salary", "overtime_hours", "overtime_pay", "reimbursements", "cash_advances", "net_pay"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, line := range resp.Lines {
		row := []string{
			line.UserID,
			line.UserName,
			line.BaseSalary.StringFixed(2),
			strconv.FormatFloat(line.OvertimeHours, 'f', 2, 64),
			line.OvertimePay.StringFixed(2),
			line.Reimbursements.StringFixed(2),
			line.CashAdvances.StringFixed(2),
			line.NetPay.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
