package http

import (
	"net/http"
	"strconv"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/payroll"
	"github.com/alsaqr-welding/portal-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	MyLine(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Compute implements PayrollHandler.
func (h *payrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	req := parsePeriod(r)

	result, err := h.payrollService.Compute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyLine implements PayrollHandler.
func (h *payrollHandlerImpl) MyLine(w http.ResponseWriter, r *http.Request) {
	req := parsePeriod(r)

	result, err := h.payrollService.MyLine(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parsePeriod(r *http.Request) payroll.ComputeRequest {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return payroll.ComputeRequest{Month: month, Year: year}
}
