package report

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops/backoffice/pkg/dto"
)

type fakeLister struct {
	rows    []*dto.TransactionRead
	maxRows int
	err     error
}

func (f *fakeLister) ListForReport(_ context.Context, _ dto.TransactionListQuery, maxRows int) ([]*dto.TransactionRead, error) {
	f.maxRows = maxRows
	return f.rows, f.err
}

func strPtr(s string) *string { return &s }

func sampleRows() []*dto.TransactionRead {
	return []*dto.TransactionRead{
		{
			ID:                1,
			TransactionType:   0,
			ClientName:        "Acme Ltd",
			BankName:          strPtr("First National"),
			TransactionAmount: decimal.NewFromInt(1500),
			CreateDate:        "2026-08-20",
			CreateTime:        "10:15:00",
			Remark:            "opening deposit",
		},
		{
			ID:                2,
			TransactionType:   1,
			ClientName:        "Acme Ltd",
			TransactionAmount: decimal.NewFromInt(300),
			WithdrawCharges:   decimal.RequireFromString("15.00"),
			CreateDate:        "2026-08-21",
			CreateTime:        "16:40:00",
		},
	}
}

func TestBuildPDFProducesDocument(t *testing.T) {
	lister := &fakeLister{rows: sampleRows()}
	svc := New(lister, 1000, slog.New(slog.DiscardHandler))

	doc, name, err := svc.BuildPDF(context.Background(), dto.TransactionListQuery{})

	require.NoError(t, err)
	assert.Equal(t, 1000, lister.maxRows)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "output must be a PDF document")
	assert.Regexp(t, `^transactions-report-\d{8}-\d{6}\.pdf$`, name)
}

func TestBuildExcelProducesWorkbook(t *testing.T) {
	lister := &fakeLister{rows: sampleRows()}
	svc := New(lister, 1000, slog.New(slog.DiscardHandler))

	doc, name, err := svc.BuildExcel(context.Background(), dto.TransactionListQuery{})

	require.NoError(t, err)
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(doc, []byte("PK")), "output must be a zip-based workbook")
	assert.Regexp(t, `^transactions-report-\d{8}-\d{6}\.xlsx$`, name)
}

func TestBuildPDFWithNoRowsStillRenders(t *testing.T) {
	svc := New(&fakeLister{}, 1000, slog.New(slog.DiscardHandler))

	doc, _, err := svc.BuildPDF(context.Background(), dto.TransactionListQuery{})

	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
