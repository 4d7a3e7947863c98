package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
	"github.com/imoveis-app/imoveis_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Column layout of the portfolio workbook, one property per row after the
// header: name, unit, area, property value, rent, condo fee, IPTU, extra fee,
// tenant, lease start, lease end, due day, net value, notes.
const (
	colName = iota
	colUnit
	colArea
	colPropertyValue
	colRentValue
	colCondoFee
	colIPTU
	colExtraFee
	colTenant
	colStartDate
	colEndDate
	colDueDay
	colNetValue
	colNotes
)

type importService struct {
	BaseService
	properties portssvc.PropertySvcFacade
}

// NewImportService creates the spreadsheet import service.
func NewImportService(properties portssvc.PropertySvcFacade) portssvc.ImportSvcFacade {
	return &importService{properties: properties}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// ImportProperties reads the first sheet of an .xlsx workbook and creates one
// property per data row. Rows missing a building name or with unparseable
// amounts are skipped and reported in the summary; the rest are imported.
func (s *importService) ImportProperties(ctx context.Context, r io.Reader) (*dto.ImportSummary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	summary := &dto.ImportSummary{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		req, err := rowToCreateRequest(row)
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if _, err := s.properties.CreateProperty(ctx, req); err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		summary.Imported++
	}

	s.LogInfo(ctx, "Spreadsheet import finished",
		slog.Int("imported", summary.Imported),
		slog.Int("skipped", summary.Skipped))
	return summary, nil
}

func rowToCreateRequest(row []string) (dto.CreatePropertyRequest, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name := cell(colName)
	if name == "" {
		return dto.CreatePropertyRequest{}, fmt.Errorf("missing building name")
	}

	area, err := parseFloatCell(cell(colArea))
	if err != nil {
		return dto.CreatePropertyRequest{}, fmt.Errorf("invalid area: %w", err)
	}

	money := map[string]decimal.Decimal{}
	for _, c := range []struct {
		label string
		col   int
	}{
		{"propertyValue", colPropertyValue},
		{"rentValue", colRentValue},
		{"condoFee", colCondoFee},
		{"iptu", colIPTU},
		{"extraFee", colExtraFee},
		{"netValue", colNetValue},
	} {
		v, err := parseMoneyCell(cell(c.col))
		if err != nil {
			return dto.CreatePropertyRequest{}, fmt.Errorf("invalid %s: %w", c.label, err)
		}
		money[c.label] = v
	}

	dueDay := 1
	if raw := cell(colDueDay); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 1 || d > 31 {
			return dto.CreatePropertyRequest{}, fmt.Errorf("invalid due day %q", raw)
		}
		dueDay = d
	}

	tenant := cell(colTenant)
	status := "vacant"
	if tenant != "" {
		status = "occupied"
	}

	return dto.CreatePropertyRequest{
		Name:          name,
		Unit:          cell(colUnit),
		Area:          area,
		PropertyValue: money["propertyValue"],
		RentValue:     money["rentValue"],
		CondoFee:      money["condoFee"],
		IPTU:          money["iptu"],
		ExtraFee:      money["extraFee"],
		Tenant:        tenant,
		StartDate:     parseDateCell(cell(colStartDate)),
		EndDate:       parseDateCell(cell(colEndDate)),
		DueDay:        dueDay,
		NetValue:      money["netValue"],
		Notes:         cell(colNotes),
		Status:        status,
	}, nil
}

func parseFloatCell(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(normalizeNumber(raw), 64)
}

func parseMoneyCell(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(normalizeNumber(raw))
}

// normalizeNumber strips currency prefixes and converts pt-BR separators
// ("1.490.000,00") to the canonical form ("1490000.00").
func normalizeNumber(raw string) string {
	s := strings.TrimSpace(strings.TrimPrefix(raw, "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strings.TrimSpace(s)
}

// parseDateCell accepts ISO dates, pt-BR dates and raw Excel serial numbers.
// Anything unrecognized becomes an empty date rather than failing the row.
func parseDateCell(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006", "01-02-06"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		// Excel serial day 25569 is the Unix epoch.
		t := time.Unix(int64((serial-25569)*86400), 0).UTC()
		return t.Format("2006-01-02")
	}
	return ""
}
