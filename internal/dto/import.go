package dto

// ImportSummary reports the outcome of a spreadsheet import.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"` // One entry per skipped row
}
