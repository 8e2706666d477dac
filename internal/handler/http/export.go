package http

import (
	"log/slog"
	"net/http"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/payroll"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/handler/http/response"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/export"
)

type ExportHandler interface {
	TransactionsCSV(w http.ResponseWriter, r *http.Request)
	PayrollCSV(w http.ResponseWriter, r *http.Request)
	VouchersXML(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	transactionService transaction.TransactionService
	payrollService     payroll.PayrollService
	companyName        string
}

func NewExportHandler(transactionService transaction.TransactionService, payrollService payroll.PayrollService, companyName string) ExportHandler {
	return &exportHandlerImpl{
		transactionService: transactionService,
		payrollService:     payrollService,
		companyName:        companyName,
	}
}

// TransactionsCSV implements ExportHandler.
func (h *exportHandlerImpl) TransactionsCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTransactionFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	txs, err := h.transactionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	if err := export.WriteTransactionsCSV(w, txs); err != nil {
		slog.Error("Failed to write transactions CSV", "error", err)
	}
}

// PayrollCSV implements ExportHandler.
func (h *exportHandlerImpl) PayrollCSV(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Compute(r.Context(), parsePeriod(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payroll.csv"`)
	if err := export.WritePayrollCSV(w, result); err != nil {
		slog.Error("Failed to write payroll CSV", "error", err)
	}
}

// VouchersXML implements ExportHandler.
func (h *exportHandlerImpl) VouchersXML(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTransactionFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	txs, err := h.transactionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", `attachment; filename="vouchers.xml"`)
	if err := export.WriteVouchersXML(w, h.companyName, txs); err != nil {
		slog.Error("Failed to write vouchers XML", "error", err)
	}
}
