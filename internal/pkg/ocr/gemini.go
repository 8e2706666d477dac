package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const DefaultModelName = "gemini-2.5-flash"

// DraftItem mirrors a receipt line as the model reads it.
type DraftItem struct {
	Description string          `json:"description"`
	Quantity    float64         `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Draft is a best-effort structured reading of a receipt image. Every field
// is an editable suggestion; SubmitExpense consumes the user-edited copy,
// never this value directly.
type Draft struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Vendor   string          `json:"vendor"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
	Items    []DraftItem     `json:"items"`
}

// ReceiptScanner is the OCR collaborator boundary.
type ReceiptScanner interface {
	ScanReceipt(ctx context.Context, image []byte, mimeType string) (Draft, error)
}

type GeminiScanner struct {
	model string
}

func NewGeminiScanner(model string) *GeminiScanner {
	if model == "" {
		model = DefaultModelName
	}
	return &GeminiScanner{model: model}
}

// ScanReceipt sends the image to Gemini and parses the strict-JSON reply. On
// any failure it returns a manual-review draft instead of an error so a bad
// scan never blocks claim entry.
func (s *GeminiScanner) ScanReceipt(ctx context.Context, image []byte, mimeType string) (Draft, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return Draft{}, fmt.Errorf("ScanReceipt: create genai client: %w", err)
	}

	prompt :=
		"You are a receipt reader for an industrial welding company.\n\n" +
			"Extract exactly:\n" +
			"1. \"vendor\": string\n" +
			"2. \"date\": string, ISO format \"YYYY-MM-DD\"\n" +
			"3. \"amount\": number (the receipt total)\n" +
			"4. \"currency\": string (e.g. \"AED\")\n" +
			"5. \"category\": one of [" + strings.Join(transaction.Categories, ", ") + "]\n" +
			"6. \"items\": array of {\"description\": string, \"quantity\": number, \"unit_price\": number}\n\n" +
			"Return ONLY valid raw JSON for a single object.\n" +
			"Do NOT wrap the response in code fences.\n" +
			"Do NOT use ```json or any Markdown.\n" +
			"Output must begin with \"{\" and end with \"}\".\n"

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     image,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return manualReviewDraft(), nil
	}

	rawText := resp.Text()
	if rawText == "" {
		return manualReviewDraft(), nil
	}

	var draft Draft
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &draft); err != nil {
		return manualReviewDraft(), nil
	}

	// The suggestion must land on the taxonomy; unmatched values become
	// "Others" rather than a validation error.
	draft.Category = transaction.NormalizeCategory(draft.Category)
	if draft.Currency == "" {
		draft.Currency = "AED"
	}
	if _, err := time.Parse("2006-01-02", draft.Date); err != nil {
		draft.Date = time.Now().UTC().Format("2006-01-02")
	}

	return draft, nil
}

func manualReviewDraft() Draft {
	return Draft{
		Date:     time.Now().UTC().Format("2006-01-02"),
		Vendor:   "Check Receipt Manually",
		Amount:   decimal.Zero,
		Currency: "AED",
		Category: "Others",
		Items:    []DraftItem{},
	}
}

// cleanModelJSON strips Markdown fences if the model ignored instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
