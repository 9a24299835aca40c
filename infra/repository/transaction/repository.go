package transaction

import (
	"context"
	"errors"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	txrepo "github.com/finops/backoffice/pkg/repository/transaction"
	"gorm.io/gorm"
)

const readColumns = "transactions.id, transactions.transaction_type, " +
	"transactions.client_id, clients.name AS client_name, " +
	"transactions.bank_id, banks.name AS bank_name, " +
	"transactions.card_id, cards.name AS card_name, " +
	"transactions.transaction_amount, transactions.withdraw_charges, " +
	"transactions.remark, transactions.created_at, transactions.updated_at"

type repository struct {
	db *gorm.DB
}

// New returns the GORM-backed transaction repository.
func New(db *gorm.DB) txrepo.Repository {
	return &repository{db: db}
}

// joined attaches the client/bank/card joins every read needs. The client
// join is inner (client_id is required); bank and card stay optional.
func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions").
		Joins("JOIN clients ON clients.id = transactions.client_id").
		Joins("LEFT JOIN banks ON banks.id = transactions.bank_id").
		Joins("LEFT JOIN cards ON cards.id = transactions.card_id")
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	m := &Transaction{
		TransactionType:   *create.TransactionType,
		ClientID:          create.ClientID,
		BankID:            create.BankID,
		CardID:            create.CardID,
		TransactionAmount: create.TransactionAmount,
		WithdrawCharges:   create.WithdrawCharges,
		Remark:            create.Remark,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

func (r *repository) Get(
	ctx context.Context,
	id int64,
) (*dto.TransactionRead, error) {
	var row transactionRow
	err := r.joined(ctx).
		Select(readColumns).
		Where("transactions.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapRowToDTO(&row), nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	update *dto.TransactionUpdate,
) (*dto.TransactionRead, error) {
	res := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"transaction_type":   *update.TransactionType,
			"client_id":          update.ClientID,
			"bank_id":            update.BankID,
			"card_id":            update.CardID,
			"transaction_amount": update.TransactionAmount,
			"withdraw_charges":   update.WithdrawCharges,
			"remark":             update.Remark,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM transactions WHERE id = ?", id)
	return res.RowsAffected, res.Error
}

// listQuery builds the shared predicate for the data query and its paired
// count query: filters and free-text search over the joined columns.
func (r *repository) listQuery(ctx context.Context, q dto.TransactionListQuery) *gorm.DB {
	tx := r.joined(ctx)
	if q.Type != nil {
		tx = tx.Where("transactions.transaction_type = ?", *q.Type)
	}
	if q.MinAmount != nil {
		tx = tx.Where("transactions.transaction_amount >= ?", *q.MinAmount)
	}
	if q.MaxAmount != nil {
		tx = tx.Where("transactions.transaction_amount <= ?", *q.MaxAmount)
	}
	if q.Dates != nil {
		if q.Dates.From != nil {
			tx = tx.Where("transactions.created_at >= ?", *q.Dates.From)
		}
		if ub := q.Dates.UpperBound(); ub != nil {
			tx = tx.Where("transactions.created_at < ?", *ub)
		}
	}
	if len(q.BankIDs) > 0 {
		tx = tx.Where("transactions.bank_id IN ?", q.BankIDs)
	}
	if len(q.CardIDs) > 0 {
		tx = tx.Where("transactions.card_id IN ?", q.CardIDs)
	}
	if len(q.ClientIDs) > 0 {
		tx = tx.Where("transactions.client_id IN ?", q.ClientIDs)
	}
	if cond, args, ok := query.Transactions.SearchCondition(q.Search); ok {
		tx = tx.Where(cond, args...)
	}
	return tx
}

func (r *repository) ListPaginated(
	ctx context.Context,
	q dto.TransactionListQuery,
) ([]*dto.TransactionRead, int64, error) {
	var total int64
	if err := r.listQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []transactionRow
	err := r.listQuery(ctx, q).
		Select(readColumns).
		Order(q.Sort.Clause(query.Transactions.IDColumn)).
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDTO(&rows[i]))
	}
	return result, total, nil
}

func (r *repository) ListForReport(
	ctx context.Context,
	q dto.TransactionListQuery,
	maxRows int,
) ([]*dto.TransactionRead, error) {
	var rows []transactionRow
	err := r.listQuery(ctx, q).
		Select(readColumns).
		Order(q.Sort.Clause(query.Transactions.IDColumn)).
		Limit(maxRows).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDTO(&rows[i]))
	}
	return result, nil
}
