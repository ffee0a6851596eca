// Package export renders transaction lists as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/aggregation"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/xuri/excelize/v2"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet the XLSX export writes to.
const SheetName = "Transactions"

// Header is the column order shared by every format.
var Header = []string{"id", "date", "description", "category", "type", "amount"}

// ParseFormat maps a query value to a Format. Empty means CSV.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case "", FormatCSV:
		return FormatCSV, true
	case FormatXLSX:
		return FormatXLSX, true
	}
	return "", false
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Row is the text form of one transaction in Header order.
func Row(t domain.Transaction) []string {
	return []string{
		t.ID,
		mapping.FormatDate(t.Date),
		t.Description,
		t.Category,
		string(t.Type),
		t.Amount.StringFixed(2),
	}
}

// WriteCSV writes the header and one line per transaction.
func WriteCSV(w io.Writer, txns []domain.Transaction) error {
	rows := make([][]string, 0, len(txns)+1)
	rows = append(rows, Header)
	for _, t := range txns {
		rows = append(rows, Row(t))
	}
	if err := csv.NewWriter(w).WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteXLSX writes a single-sheet workbook with a styled header, one row per
// transaction and income, expense and balance rows at the bottom.
func WriteXLSX(w io.Writer, txns []domain.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	amountFmt := "#,##0.00"
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt, Border: border})
	if err != nil {
		return fmt.Errorf("amount style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		CustomNumFmt: &amountFmt,
		Border:       border,
	})
	if err != nil {
		return fmt.Errorf("total style: %w", err)
	}

	widths := map[string]float64{"A": 38, "B": 12, "C": 32, "D": 16, "E": 10, "F": 14}
	for col, width := range widths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, t := range txns {
		row := i + 2
		values := []any{
			t.ID,
			mapping.FormatDate(t.Date),
			t.Description,
			t.Category,
			string(t.Type),
			t.Amount.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		cell := fmt.Sprintf("F%d", row)
		if err := f.SetCellStyle(SheetName, cell, cell, amountStyle); err != nil {
			return fmt.Errorf("style row %d: %w", row, err)
		}
	}

	totals := aggregation.Totals(txns)
	summary := []struct {
		label string
		value float64
	}{
		{"Total income", totals.TotalIncome.InexactFloat64()},
		{"Total expenses", totals.TotalExpenses.InexactFloat64()},
		{"Balance", totals.Balance.InexactFloat64()},
	}
	first := len(txns) + 2
	for i, s := range summary {
		row := first + i
		label := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(SheetName, label, s.label); err != nil {
			return fmt.Errorf("write total: %w", err)
		}
		if err := f.MergeCell(SheetName, label, fmt.Sprintf("E%d", row)); err != nil {
			return fmt.Errorf("merge total: %w", err)
		}
		if err := f.SetCellValue(SheetName, fmt.Sprintf("F%d", row), s.value); err != nil {
			return fmt.Errorf("write total: %w", err)
		}
		if err := f.SetCellStyle(SheetName, label, fmt.Sprintf("F%d", row), totalStyle); err != nil {
			return fmt.Errorf("style total: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
