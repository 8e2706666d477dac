package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
)

// voucher is one accounting entry in the export vocabulary consumed by the
// company's bookkeeping software.
type voucher struct {
	XMLName  xml.Name `xml:"Voucher"`
	ID       string   `xml:"Id,attr"`
	Date     string   `xml:"Date"`
	Party    string   `xml:"Party"`
	Narrated string   `xml:"Narration"`
	Type     string   `xml:"Type"`
	Amount   string   `xml:"Amount"`
	Currency string   `xml:"Currency"`
	Status   string   `xml:"Status"`
}

type voucherBatch struct {
	XMLName  xml.Name  `xml:"VoucherBatch"`
	Company  string    `xml:"Company"`
	Vouchers []voucher `xml:"Vouchers>Voucher"`
}

// WriteVouchersXML renders finalized transactions into the accounting-XML
// vocabulary. Read-only consumer.
func WriteVouchersXML(w io.Writer, company string, txs []transaction.TransactionResponse) error {
	batch := voucherBatch{Company: company}
	for _, t := range txs {
		narration := t.Vendor
		if t.Category != "" {
			narration = fmt.Sprintf("%s (%s)", t.Vendor, t.Category)
		}
		batch.Vouchers = append(batch.Vouchers, voucher{
			ID:       t.ID,
			Date:     t.OccurredOn,
			Party:    t.UserName,
			Narrated: narration,
			Type:     t.Kind,
			Amount:   t.Amount.StringFixed(2),
			Currency: "AED",
			Status:   t.Status,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("encode voucher batch: %w", err)
	}
	return nil
}
