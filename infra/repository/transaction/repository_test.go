package transaction_test

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finops/backoffice/infra/repository/transaction"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

var readCols = []string{
	"id", "transaction_type", "client_id", "client_name",
	"bank_id", "bank_name", "card_id", "card_name",
	"transaction_amount", "withdraw_charges", "remark",
	"created_at", "updated_at",
}

func TestListPaginatedSharesPredicateWithCount(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	repo := transaction.New(gdb)

	minAmount := decimal.NewFromInt(500)
	txType := 1
	q := dto.TransactionListQuery{
		Page:      query.PageRequest{Page: 2, Limit: 25},
		Sort:      query.Transactions.ResolveSort("create_date", "desc"),
		Search:    "acme",
		Type:      &txType,
		MinAmount: &minAmount,
	}

	// Both queries must carry the identical filter and search arguments.
	predicateArgs := []driver.Value{1, minAmount, "%acme%", "%acme%", "%acme%", "%acme%"}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" JOIN clients ON clients\.id = transactions\.client_id`).
		WithArgs(predicateArgs...).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(150))

	now := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(readCols).
		AddRow(int64(41), 1, int64(7), "Acme Traders", nil, nil, nil, nil,
			"750.00", "0.00", "invoice 88", now, now).
		AddRow(int64(40), 1, int64(7), "Acme Traders", nil, nil, nil, nil,
			"620.00", "0.00", "invoice 87", now, now)
	mock.ExpectQuery(`SELECT transactions\.id, .* FROM "transactions" .*ORDER BY transactions\.created_at DESC, transactions\.id ASC LIMIT`).
		WithArgs(append(append([]driver.Value{}, predicateArgs...), 25, 25)...).
		WillReturnRows(rows)

	result, total, err := repo.ListPaginated(context.Background(), q)
	require.NoError(t, err)
	assert.EqualValues(t, 150, total)
	require.Len(t, result, 2)
	assert.Equal(t, int64(41), result[0].ID)
	assert.Equal(t, "Acme Traders", result[0].ClientName)
	assert.Equal(t, "2024-03-10", result[0].CreateDate)
	assert.Equal(t, "14:30:00", result[0].CreateTime)
	assert.True(t, result[0].TransactionAmount.Equal(decimal.RequireFromString("750.00")))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPaginatedAppliesIDSetFilters(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	repo := transaction.New(gdb)

	q := dto.TransactionListQuery{
		Page:    query.PageRequest{Page: 1, Limit: 50},
		Sort:    query.Transactions.ResolveSort("", ""),
		BankIDs: []int64{4, 9},
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions".*transactions\.bank_id IN`).
		WithArgs(int64(4), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT transactions\.id, .* FROM "transactions"`).
		WithArgs(int64(4), int64(9), 50, 0).
		WillReturnRows(sqlmock.NewRows(readCols))

	result, total, err := repo.ListPaginated(context.Background(), q)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, result)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReturnsNilWhenMissing(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	repo := transaction.New(gdb)

	mock.ExpectQuery(`SELECT transactions\.id, .* FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows(readCols))

	got, err := repo.Get(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReportsRowsAffected(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	repo := transaction.New(gdb)

	mock.ExpectExec(`DELETE FROM transactions WHERE id = \$1`).
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Delete(context.Background(), 12)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}
