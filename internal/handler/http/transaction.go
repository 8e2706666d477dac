package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/handler/http/response"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/storage"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransactionHandler interface {
	SubmitExpense(w http.ResponseWriter, r *http.Request)
	RequestTopUp(w http.ResponseWriter, r *http.Request)
	GrantDirect(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	DecideBatch(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type transactionHandlerImpl struct {
	transactionService transaction.TransactionService
	fileStorage        storage.FileStorage
}

func NewTransactionHandler(transactionService transaction.TransactionService, fileStorage storage.FileStorage) TransactionHandler {
	return &transactionHandlerImpl{
		transactionService: transactionService,
		fileStorage:        fileStorage,
	}
}

// SubmitExpense implements TransactionHandler. The claim arrives either as
// plain JSON or as a multipart form with a 'data' field and an optional
// 'receipt' image that is stored alongside the ledger entry.
func (h *transactionHandlerImpl) SubmitExpense(w http.ResponseWriter, r *http.Request) {
	var req transaction.SubmitExpenseRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// Parse multipart form (max 10MB)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return
		}
		if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
			slog.Error("Failed to unmarshal JSON data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		file, fileHeader, err := r.FormFile("receipt")
		if err != nil && err != http.ErrMissingFile {
			slog.Error("Failed to get file from form", "error", err)
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
		if err == nil {
			defer file.Close()
			path := fmt.Sprintf("receipts/%s_%s", uuid.New().String(), fileHeader.Filename)
			stored, err := h.fileStorage.Upload(r.Context(), file, path, fileHeader.Header.Get("Content-Type"))
			if err != nil {
				slog.Error("Failed to store receipt", "error", err)
				response.InternalServerError(w, "Failed to store receipt")
				return
			}
			req.ReceiptRef = &stored
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.transactionService.SubmitExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense claim submitted", result)
}

// RequestTopUp implements TransactionHandler.
func (h *transactionHandlerImpl) RequestTopUp(w http.ResponseWriter, r *http.Request) {
	var req transaction.RequestTopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.transactionService.RequestTopUp(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Top-up requested", result)
}

// GrantDirect implements TransactionHandler.
func (h *transactionHandlerImpl) GrantDirect(w http.ResponseWriter, r *http.Request) {
	var req transaction.GrantDirectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.transactionService.GrantDirect(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Top-up granted", result)
}

// Decide implements TransactionHandler.
func (h *transactionHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req transaction.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.transactionService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DecideBatch implements TransactionHandler.
func (h *transactionHandlerImpl) DecideBatch(w http.ResponseWriter, r *http.Request) {
	var req transaction.BatchDecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.transactionService.DecideBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TransactionHandler.
func (h *transactionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTransactionFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.transactionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements TransactionHandler.
func (h *transactionHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.transactionService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseTransactionFilter(r *http.Request) (transaction.Filter, error) {
	filter := transaction.Filter{
		UserID: r.URL.Query().Get("user_id"),
		Kind:   transaction.Kind(r.URL.Query().Get("kind")),
		Status: transaction.Status(r.URL.Query().Get("status")),
	}

	var errs validator.ValidationErrors
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "must be YYYY-MM-DD"})
		} else {
			filter.From = &t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "must be YYYY-MM-DD"})
		} else {
			filter.To = &t
		}
	}

	if len(errs) > 0 {
		return transaction.Filter{}, errs
	}
	return filter, nil
}
