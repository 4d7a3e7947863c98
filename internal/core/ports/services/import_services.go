package services

import (
	"context"
	"io"

	"github.com/imoveis-app/imoveis_backend/internal/dto"
)

// ImportSvcFacade loads a portfolio from an uploaded spreadsheet.
type ImportSvcFacade interface {
	// ImportProperties reads an .xlsx workbook, creating one property per
	// data row. Rows that fail validation are skipped and counted.
	ImportProperties(ctx context.Context, r io.Reader) (*dto.ImportSummary, error)
}
