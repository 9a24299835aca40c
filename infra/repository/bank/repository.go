package bank

import (
	"context"
	"errors"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	bankrepo "github.com/finops/backoffice/pkg/repository/bank"
	"gorm.io/gorm"
)

const countJoin = "LEFT JOIN (SELECT bank_id, COUNT(*) AS transaction_count " +
	"FROM transactions WHERE bank_id IS NOT NULL GROUP BY bank_id) tc ON tc.bank_id = banks.id"

const readColumns = "banks.id, banks.name, banks.created_at, banks.updated_at, " +
	"COALESCE(tc.transaction_count, 0) AS transaction_count"

type repository struct {
	db *gorm.DB
}

// New returns the GORM-backed bank repository.
func New(db *gorm.DB) bankrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.BankCreate,
) (*dto.BankRead, error) {
	m := &Bank{Name: create.Name}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

func (r *repository) Get(ctx context.Context, id int64) (*dto.BankRead, error) {
	var row bankRow
	err := r.db.WithContext(ctx).
		Table("banks").
		Joins(countJoin).
		Select(readColumns).
		Where("banks.id = ?", id).
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
	update *dto.BankUpdate,
) (*dto.BankRead, error) {
	res := r.db.WithContext(ctx).Model(&Bank{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": update.Name})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

// Delete is conditioned on the absence of referencing transactions so the
// existence check and the delete cannot race.
func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"DELETE FROM banks WHERE id = ? AND NOT EXISTS "+
			"(SELECT 1 FROM transactions WHERE transactions.bank_id = banks.id)", id)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Bank{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) listQuery(ctx context.Context, q dto.EntityListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Table("banks").Joins(countJoin)
	if cond, args, ok := query.Banks.SearchCondition(q.Search); ok {
		tx = tx.Where(cond, args...)
	}
	if q.Dates != nil {
		if q.Dates.From != nil {
			tx = tx.Where("banks.created_at >= ?", *q.Dates.From)
		}
		if ub := q.Dates.UpperBound(); ub != nil {
			tx = tx.Where("banks.created_at < ?", *ub)
		}
	}
	return tx
}

func (r *repository) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.BankRead, int64, error) {
	var total int64
	if err := r.listQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []bankRow
	err := r.listQuery(ctx, q).
		Select(readColumns).
		Order(q.Sort.Clause(query.Banks.IDColumn)).
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*dto.BankRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDTO(&rows[i]))
	}
	return result, total, nil
}

func (r *repository) Autocomplete(
	ctx context.Context,
	term string,
	limit int,
) ([]*dto.NameRead, error) {
	tx := r.db.WithContext(ctx).
		Table("banks").
		Select("banks.id, banks.name")
	if term != "" {
		tx = tx.Where("banks.name ILIKE ?", "%"+term+"%")
	}
	var rows []dto.NameRead
	err := tx.Order("banks.name ASC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.NameRead, 0, len(rows))
	for i := range rows {
		result = append(result, &rows[i])
	}
	return result, nil
}
