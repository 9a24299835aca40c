package profiler

import (
	"context"
	"errors"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	profilerrepo "github.com/finops/backoffice/pkg/repository/profiler"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const transactionReadColumns = "profiler_transactions.id, profiler_transactions.profile_id, " +
	"profiler_clients.name AS client_name, profiler_profiles.credit_card_number, " +
	"profiler_transactions.transaction_type, profiler_transactions.amount, " +
	"profiler_transactions.withdraw_charges_percentage, profiler_transactions.withdraw_charges_amount, " +
	"profiler_transactions.created_at, profiler_transactions.updated_at"

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns the GORM-backed profiler ledger repository.
func NewTransactionRepository(db *gorm.DB) profilerrepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("profiler_transactions").
		Joins("JOIN profiler_profiles ON profiler_profiles.id = profiler_transactions.profile_id").
		Joins("JOIN profiler_clients ON profiler_clients.id = profiler_profiles.client_id")
}

func (r *transactionRepository) Create(
	ctx context.Context,
	create *dto.ProfilerTransactionCreate,
	chargesAmount *decimal.Decimal,
) (*dto.ProfilerTransactionRead, error) {
	m := &Transaction{
		ProfileID:                 create.ProfileID,
		TransactionType:           create.TransactionType,
		Amount:                    create.Amount,
		WithdrawChargesPercentage: create.WithdrawChargesPercentage,
		WithdrawChargesAmount:     chargesAmount,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

func (r *transactionRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.ProfilerTransactionRead, error) {
	var row transactionRow
	err := r.joined(ctx).
		Select(transactionReadColumns).
		Where("profiler_transactions.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapTransactionRow(&row), nil
}

func (r *transactionRepository) Update(
	ctx context.Context,
	id int64,
	update *dto.ProfilerTransactionUpdate,
	chargesAmount *decimal.Decimal,
) (*dto.ProfilerTransactionRead, error) {
	res := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"profile_id":                  update.ProfileID,
			"transaction_type":            update.TransactionType,
			"amount":                      update.Amount,
			"withdraw_charges_percentage": update.WithdrawChargesPercentage,
			"withdraw_charges_amount":     chargesAmount,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func (r *transactionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM profiler_transactions WHERE id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *transactionRepository) listQuery(
	ctx context.Context,
	q dto.ProfilerTransactionListQuery,
) *gorm.DB {
	tx := r.joined(ctx)
	if len(q.ProfileIDs) > 0 {
		tx = tx.Where("profiler_transactions.profile_id IN ?", q.ProfileIDs)
	}
	if q.Type != "" {
		tx = tx.Where("profiler_transactions.transaction_type = ?", q.Type)
	}
	if q.MinAmount != nil {
		tx = tx.Where("profiler_transactions.amount >= ?", *q.MinAmount)
	}
	if q.MaxAmount != nil {
		tx = tx.Where("profiler_transactions.amount <= ?", *q.MaxAmount)
	}
	if q.Dates != nil {
		if q.Dates.From != nil {
			tx = tx.Where("profiler_transactions.created_at >= ?", *q.Dates.From)
		}
		if ub := q.Dates.UpperBound(); ub != nil {
			tx = tx.Where("profiler_transactions.created_at < ?", *ub)
		}
	}
	if cond, args, ok := query.ProfilerTransactions.SearchCondition(q.Search); ok {
		tx = tx.Where(cond, args...)
	}
	return tx
}

func (r *transactionRepository) ListPaginated(
	ctx context.Context,
	q dto.ProfilerTransactionListQuery,
) ([]*dto.ProfilerTransactionRead, int64, error) {
	var total int64
	if err := r.listQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []transactionRow
	err := r.listQuery(ctx, q).
		Select(transactionReadColumns).
		Order(q.Sort.Clause(query.ProfilerTransactions.IDColumn)).
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*dto.ProfilerTransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapTransactionRow(&rows[i]))
	}
	return result, total, nil
}

// Summary aggregates the profile's deposits, withdrawals and charges with
// one conditional-aggregation query.
func (r *transactionRepository) Summary(
	ctx context.Context,
	profileID int64,
) (*dto.ProfileSummary, error) {
	var row struct {
		TotalDeposits    decimal.Decimal
		TotalWithdrawals decimal.Decimal
		TotalCharges     decimal.Decimal
		TransactionCount int64
	}
	err := r.db.WithContext(ctx).
		Table("profiler_transactions").
		Select("COALESCE(SUM(CASE WHEN transaction_type = 'deposit' THEN amount END), 0) AS total_deposits, "+
			"COALESCE(SUM(CASE WHEN transaction_type = 'withdraw' THEN amount END), 0) AS total_withdrawals, "+
			"COALESCE(SUM(CASE WHEN transaction_type = 'withdraw' THEN withdraw_charges_amount END), 0) AS total_charges, "+
			"COUNT(*) AS transaction_count").
		Where("profile_id = ?", profileID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &dto.ProfileSummary{
		ProfileID:        profileID,
		TotalDeposits:    row.TotalDeposits,
		TotalWithdrawals: row.TotalWithdrawals,
		TotalCharges:     row.TotalCharges,
		Balance:          row.TotalDeposits.Sub(row.TotalWithdrawals).Sub(row.TotalCharges),
		TransactionCount: row.TransactionCount,
	}, nil
}
