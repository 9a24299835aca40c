package profiler_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finops/backoffice/infra/repository/profiler"
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

func TestSummaryAggregatesDepositsWithdrawalsAndCharges(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	repo := profiler.NewTransactionRepository(gdb)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN transaction_type = 'deposit' THEN amount END\), 0\) AS total_deposits`).
		WillReturnRows(sqlmock.
			NewRows([]string{"total_deposits", "total_withdrawals", "total_charges", "transaction_count"}).
			AddRow("5000.00", "1200.00", "60.00", int64(7)))

	got, err := repo.Summary(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, 9, got.ProfileID)
	assert.True(t, got.TotalDeposits.Equal(decimal.RequireFromString("5000.00")))
	assert.True(t, got.TotalWithdrawals.Equal(decimal.RequireFromString("1200.00")))
	assert.True(t, got.TotalCharges.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("3740.00")))
	assert.EqualValues(t, 7, got.TransactionCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileDeleteGuardedByOwnedTransactions(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	repo := profiler.NewProfileRepository(gdb)

	mock.ExpectExec(`DELETE FROM profiler_profiles WHERE id = \$1 AND NOT EXISTS`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.Zero(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilerClientDeleteGuardedByOwnedProfiles(t *testing.T) {
	t.Parallel()

	gdb, mock := newMockDB(t)
	repo := profiler.NewClientRepository(gdb)

	mock.ExpectExec(`DELETE FROM profiler_clients WHERE id = \$1 AND NOT EXISTS`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}
