// Package report renders the filtered transaction ledger as downloadable
// PDF and Excel documents.
package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/domain"
	"github.com/finops/backoffice/pkg/dto"
)

// Lister is the slice of the transaction service the report builders need.
type Lister interface {
	ListForReport(ctx context.Context, q dto.TransactionListQuery, maxRows int) ([]*dto.TransactionRead, error)
}

// Service renders transaction reports.
type Service struct {
	transactions Lister
	maxRows      int
	logger       *slog.Logger
}

// New creates a report Service. maxRows caps how many ledger rows a single
// report may contain.
func New(transactions Lister, maxRows int, logger *slog.Logger) *Service {
	return &Service{transactions: transactions, maxRows: maxRows, logger: logger}
}

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Date", 22},
	{"Type", 18},
	{"Client", 40},
	{"Bank", 32},
	{"Card", 32},
	{"Amount", 26},
	{"Charges", 22},
	{"Remark", 60},
}

// BuildPDF renders the filtered ledger as a landscape A4 table and returns
// the document bytes plus a timestamped filename.
func (s *Service) BuildPDF(ctx context.Context, q dto.TransactionListQuery) ([]byte, string, error) {
	rows, err := s.transactions.ListForReport(ctx, q, s.maxRows)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Transactions Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Transactions Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d rows", time.Now().Format("2006-01-02 15:04"), len(rows)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	var totalAmount, totalCharges decimal.Decimal
	for _, row := range rows {
		cells := []string{
			row.CreateDate,
			domain.TransactionType(row.TransactionType).String(),
			row.ClientName,
			deref(row.BankName),
			deref(row.CardName),
			row.TransactionAmount.StringFixed(2),
			row.WithdrawCharges.StringFixed(2),
			row.Remark,
		}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		totalAmount = totalAmount.Add(row.TransactionAmount)
		totalCharges = totalCharges.Add(row.WithdrawCharges)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Total amount: %s    Total charges: %s",
		totalAmount.StringFixed(2), totalCharges.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error("pdf rendering failed", "error", err)
		return nil, "", apperr.PDFGeneration(err)
	}
	name := fmt.Sprintf("transactions-report-%s.pdf", time.Now().Format("20060102-150405"))
	return buf.Bytes(), name, nil
}

// BuildExcel renders the filtered ledger as a single-sheet workbook.
func (s *Service) BuildExcel(ctx context.Context, q dto.TransactionListQuery) ([]byte, string, error) {
	rows, err := s.transactions.ListForReport(ctx, q, s.maxRows)
	if err != nil {
		return nil, "", err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		s.logger.Error("excel rendering failed", "error", err)
		return nil, "", apperr.Internal(err)
	}

	header := sheet.AddRow()
	for _, title := range []string{
		"Date", "Time", "Type", "Client", "Bank", "Card", "Amount", "Charges", "Remark",
	} {
		cell := header.AddCell()
		cell.SetString(title)
	}

	for _, row := range rows {
		r := sheet.AddRow()
		r.AddCell().SetString(row.CreateDate)
		r.AddCell().SetString(row.CreateTime)
		r.AddCell().SetString(domain.TransactionType(row.TransactionType).String())
		r.AddCell().SetString(row.ClientName)
		r.AddCell().SetString(deref(row.BankName))
		r.AddCell().SetString(deref(row.CardName))
		r.AddCell().SetString(row.TransactionAmount.StringFixed(2))
		r.AddCell().SetString(row.WithdrawCharges.StringFixed(2))
		r.AddCell().SetString(row.Remark)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		s.logger.Error("excel rendering failed", "error", err)
		return nil, "", apperr.Internal(err)
	}
	name := fmt.Sprintf("transactions-report-%s.xlsx", time.Now().Format("20060102-150405"))
	return buf.Bytes(), name, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
