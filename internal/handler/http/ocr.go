package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/alsaqr-welding/portal-backend-go/internal/handler/http/response"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/ocr"
)

type OCRHandler interface {
	ScanReceipt(w http.ResponseWriter, r *http.Request)
}

type ocrHandlerImpl struct {
	scanner ocr.ReceiptScanner
}

func NewOCRHandler(scanner ocr.ReceiptScanner) OCRHandler {
	return &ocrHandlerImpl{
		scanner: scanner,
	}
}

// ScanReceipt implements OCRHandler. The draft it returns is a suggestion
// for the claim form; nothing is written to the ledger here.
func (h *ocrHandlerImpl) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("receipt")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Receipt image is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read receipt image", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	draft, err := h.scanner.ScanReceipt(r.Context(), image, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, draft)
}
