package transaction

import "strings"

// Categories is the fixed claim taxonomy for the company's line of business.
var Categories = []string{
	"Welding Materials",
	"Industrial Tools",
	"Safety Equipment",
	"Vehicle/Fuel",
	"Food & Dining",
	"Site/Maintenance",
	"Office Supplies",
	"Others",
}

// NormalizeCategory maps free-form input (typically an OCR suggestion) onto
// the taxonomy. Unmatched values fall back to "Others" rather than failing
// validation, so a bad suggestion never blocks a claim.
func NormalizeCategory(c string) string {
	if strings.TrimSpace(c) == "" {
		return "Others"
	}
	for _, known := range Categories {
		if strings.EqualFold(known, c) {
			return known
		}
	}
	lc := strings.ToLower(c)
	for _, known := range Categories {
		lk := strings.ToLower(known)
		if strings.Contains(lc, lk) || strings.Contains(lk, lc) {
			return known
		}
	}
	return "Others"
}
