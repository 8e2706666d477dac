package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanModelJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"vendor":"ENOC"}`, `{"vendor":"ENOC"}`},
		{"fenced", "```json\n{\"vendor\":\"ENOC\"}\n```", `{"vendor":"ENOC"}`},
		{"fenced no language", "```\n{\"vendor\":\"ENOC\"}\n```", `{"vendor":"ENOC"}`},
		{"leading whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, cleanModelJSON(c.input))
		})
	}
}

func TestManualReviewDraft(t *testing.T) {
	draft := manualReviewDraft()

	assert.Equal(t, "Check Receipt Manually", draft.Vendor)
	assert.Equal(t, "AED", draft.Currency)
	assert.Equal(t, "Others", draft.Category)
	assert.True(t, draft.Amount.IsZero())
	assert.NotEmpty(t, draft.Date)
}
