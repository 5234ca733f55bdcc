// Package export renders a group ledger as an xlsx workbook.
package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

const (
	SheetSummary      = "Summary"
	SheetSettlements  = "Settlements"
	SheetTransactions = "Transactions"
	SheetPayments     = "Payments"

	dateLayout = "2006-01-02"
	// Built-in excel number format "0.00".
	numFmtCents = 2
)

type styles struct {
	header int
	amount int
}

// Workbook builds the export workbook for a group. The returned filename is
// derived from the group name and now.
func Workbook(group *models.Group, now time.Time) (*excelize.File, string, error) {
	f := excelize.NewFile()

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, "", err
	}

	names := memberNames(group)

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, sheet := range []string{SheetSettlements, SheetTransactions, SheetPayments} {
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	writers := []struct {
		name  string
		write func(*excelize.File, styles, *models.Group, map[string]string) error
	}{
		{SheetSummary, writeSummary},
		{SheetSettlements, writeSettlements},
		{SheetTransactions, writeTransactions},
		{SheetPayments, writePayments},
	}
	for _, w := range writers {
		if err := w.write(f, st, group, names); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("failed to write %s sheet: %w", w.name, err)
		}
	}
	f.SetActiveSheet(0)

	return f, Filename(group.Name, now), nil
}

// Write renders the workbook for a group into memory.
func Write(group *models.Group, now time.Time) ([]byte, string, error) {
	f, filename, err := Workbook(group, now)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), filename, nil
}

// Filename returns "<name>_Export_<date>.xlsx" with unsafe characters replaced.
func Filename(groupName string, now time.Time) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, strings.TrimSpace(groupName))
	if clean == "" {
		clean = "group"
	}
	return fmt.Sprintf("%s_Export_%s.xlsx", clean, now.Format(dateLayout))
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create header style: %w", err)
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: numFmtCents})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create amount style: %w", err)
	}
	return styles{header: header, amount: amount}, nil
}

func memberNames(group *models.Group) map[string]string {
	names := make(map[string]string, len(group.Members))
	for _, m := range group.Members {
		names[m.ID] = m.Name
	}
	return names
}

func nameOf(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return id
}

func formatDate(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).UTC().Format(dateLayout)
}

// writeHeader writes a bold header row at row and returns the next row.
func writeHeader(f *excelize.File, st styles, sheet string, row int, headers ...string) (int, error) {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := writeRow(f, sheet, row, cells); err != nil {
		return 0, err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	if err := f.SetCellStyle(sheet, first, last, st.header); err != nil {
		return 0, err
	}
	return row + 1, nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

// styleAmounts applies the amount format to columns [fromCol, toCol] of rows [fromRow, toRow].
func styleAmounts(f *excelize.File, st styles, sheet string, fromCol, toCol, fromRow, toRow int) error {
	if toRow < fromRow {
		return nil
	}
	first, _ := excelize.CoordinatesToCellName(fromCol, fromRow)
	last, _ := excelize.CoordinatesToCellName(toCol, toRow)
	return f.SetCellStyle(sheet, first, last, st.amount)
}

func writeSummary(f *excelize.File, st styles, group *models.Group, names map[string]string) error {
	row, err := writeHeader(f, st, SheetSummary, 1, "Member", "Status", "Total Paid", "Total Share", "Net Balance")
	if err != nil {
		return err
	}
	first := row
	for _, b := range calculator.SummarizeBalances(group) {
		status := ""
		if m := group.Member(b.MemberID); m != nil {
			status = string(m.Status)
		}
		cells := []any{
			nameOf(names, b.MemberID),
			status,
			calculator.RoundCents(b.TotalPaid),
			calculator.RoundCents(b.TotalShare),
			calculator.RoundCents(b.NetBalance),
		}
		if err := writeRow(f, SheetSummary, row, cells); err != nil {
			return err
		}
		row++
	}
	if err := styleAmounts(f, st, SheetSummary, 3, 5, first, row-1); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "A", "E", 16)
}

func writeSettlements(f *excelize.File, st styles, group *models.Group, names map[string]string) error {
	row, err := writeHeader(f, st, SheetSettlements, 1, "From", "To", "Amount")
	if err != nil {
		return err
	}
	first := row
	for _, d := range calculator.ComputeDebts(calculator.ComputeBalances(group), group.Members) {
		cells := []any{nameOf(names, d.From), nameOf(names, d.To), calculator.RoundCents(d.Amount)}
		if err := writeRow(f, SheetSettlements, row, cells); err != nil {
			return err
		}
		row++
	}
	if err := styleAmounts(f, st, SheetSettlements, 3, 3, first, row-1); err != nil {
		return err
	}
	return f.SetColWidth(SheetSettlements, "A", "C", 16)
}

// writeTransactions writes one row per transaction with one share column per member.
func writeTransactions(f *excelize.File, st styles, group *models.Group, names map[string]string) error {
	headers := []string{"Date", "Description", "Category", "Paid By", "Policy", "Amount"}
	for _, m := range group.Members {
		headers = append(headers, m.Name)
	}
	row, err := writeHeader(f, st, SheetTransactions, 1, headers...)
	if err != nil {
		return err
	}
	first := row
	for i := range group.Transactions {
		t := &group.Transactions[i]
		cells := []any{
			formatDate(t.Date),
			t.Description,
			t.Category,
			nameOf(names, t.PayerID),
			string(t.Policy),
			calculator.RoundCents(t.Amount),
		}
		for _, m := range group.Members {
			cells = append(cells, calculator.RoundCents(t.ShareOf(m.ID)))
		}
		if err := writeRow(f, SheetTransactions, row, cells); err != nil {
			return err
		}
		row++
	}
	if err := styleAmounts(f, st, SheetTransactions, 6, len(headers), first, row-1); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(SheetTransactions, "A", last, 14)
}

func writePayments(f *excelize.File, st styles, group *models.Group, names map[string]string) error {
	row, err := writeHeader(f, st, SheetPayments, 1, "Date", "From", "To", "Amount", "Notes")
	if err != nil {
		return err
	}
	first := row
	for _, p := range group.Payments {
		cells := []any{
			formatDate(p.Date),
			nameOf(names, p.FromID),
			nameOf(names, p.ToID),
			calculator.RoundCents(p.Amount),
			p.Notes,
		}
		if err := writeRow(f, SheetPayments, row, cells); err != nil {
			return err
		}
		row++
	}
	if err := styleAmounts(f, st, SheetPayments, 4, 4, first, row-1); err != nil {
		return err
	}
	return f.SetColWidth(SheetPayments, "A", "E", 14)
}
