package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/payroll"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
)

func sampleTransactions() []transaction.TransactionResponse {
	return []transaction.TransactionResponse{
		{
			ID:         "t1",
			UserID:     "u1",
			UserName:   "jahed",
			Amount:     decimal.RequireFromString("150"),
			Kind:       "EXPENSE",
			Settlement: "CASH",
			Status:     "APPROVED",
			Vendor:     "Industrial Gas Co",
			Category:   "Welding Materials",
			OccurredOn: "2024-05-20",
		},
	}
}

func TestWriteTransactionsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, sampleTransactions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,date,user,kind,settlement_method,status,vendor,category,amount_aed", lines[0])
	assert.Equal(t, "t1,2024-05-20,jahed,EXPENSE,CASH,APPROVED,Industrial Gas Co,Welding Materials,150.00", lines[1])
}

func TestWritePayrollCSV(t *testing.T) {
	resp := payroll.PayrollResponse{
		Month: 5,
		Year:  2024,
		Lines: []payroll.Line{{
			UserID:         "u1",
			UserName:       "jahed",
			BaseSalary:     decimal.RequireFromString("3500"),
			OvertimeHours:  2,
			OvertimePay:    decimal.RequireFromString("50"),
			Reimbursements: decimal.RequireFromString("85"),
			CashAdvances:   decimal.RequireFromString("200"),
			NetPay:         decimal.RequireFromString("3435"),
		}},
		TotalNetPay: decimal.RequireFromString("3435"),
	}

	var buf bytes.Buffer
	require.NoError(t, WritePayrollCSV(&buf, resp))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "u1,jahed,3500.00,2.00,50.00,85.00,200.00,3435.00", lines[1])
}

func TestWriteVouchersXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVouchersXML(&buf, "Al Saqr Welding & Blacksmith LLC", sampleTransactions()))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<Voucher Id="t1">`)
	assert.Contains(t, out, "<Party>jahed</Party>")
	assert.Contains(t, out, "<Narration>Industrial Gas Co (Welding Materials)</Narration>")
	assert.Contains(t, out, "<Amount>150.00</Amount>")
	assert.Contains(t, out, "<Currency>AED</Currency>")
}
