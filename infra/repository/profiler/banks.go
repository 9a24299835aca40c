package profiler

import (
	"context"
	"errors"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	profilerrepo "github.com/finops/backoffice/pkg/repository/profiler"
	"gorm.io/gorm"
)

const bankCountJoin = "LEFT JOIN (SELECT bank_id, COUNT(*) AS profile_count " +
	"FROM profiler_profiles GROUP BY bank_id) pc ON pc.bank_id = profiler_banks.id"

const bankReadColumns = "profiler_banks.id, profiler_banks.name, " +
	"profiler_banks.created_at, profiler_banks.updated_at, " +
	"COALESCE(pc.profile_count, 0) AS profile_count"

type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository returns the GORM-backed profiler bank repository.
func NewBankRepository(db *gorm.DB) profilerrepo.BankRepository {
	return &bankRepository{db: db}
}

func (r *bankRepository) Create(
	ctx context.Context,
	create *dto.ProfilerBankCreate,
) (*dto.ProfilerBankRead, error) {
	m := &Bank{Name: create.Name}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

func (r *bankRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.ProfilerBankRead, error) {
	var row bankRow
	err := r.db.WithContext(ctx).
		Table("profiler_banks").
		Joins(bankCountJoin).
		Select(bankReadColumns).
		Where("profiler_banks.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapBankRow(&row), nil
}

func (r *bankRepository) Update(
	ctx context.Context,
	id int64,
	update *dto.ProfilerBankUpdate,
) (*dto.ProfilerBankRead, error) {
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

// Delete is conditioned on the bank owning zero profiles.
func (r *bankRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"DELETE FROM profiler_banks WHERE id = ? AND NOT EXISTS "+
			"(SELECT 1 FROM profiler_profiles WHERE profiler_profiles.bank_id = profiler_banks.id)", id)
	return res.RowsAffected, res.Error
}

func (r *bankRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Bank{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *bankRepository) listQuery(ctx context.Context, q dto.EntityListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Table("profiler_banks").Joins(bankCountJoin)
	if cond, args, ok := query.ProfilerBanks.SearchCondition(q.Search); ok {
		tx = tx.Where(cond, args...)
	}
	if q.Dates != nil {
		if q.Dates.From != nil {
			tx = tx.Where("profiler_banks.created_at >= ?", *q.Dates.From)
		}
		if ub := q.Dates.UpperBound(); ub != nil {
			tx = tx.Where("profiler_banks.created_at < ?", *ub)
		}
	}
	return tx
}

func (r *bankRepository) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.ProfilerBankRead, int64, error) {
	var total int64
	if err := r.listQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []bankRow
	err := r.listQuery(ctx, q).
		Select(bankReadColumns).
		Order(q.Sort.Clause(query.ProfilerBanks.IDColumn)).
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*dto.ProfilerBankRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapBankRow(&rows[i]))
	}
	return result, total, nil
}

func (r *bankRepository) Autocomplete(
	ctx context.Context,
	term string,
	limit int,
) ([]*dto.NameRead, error) {
	tx := r.db.WithContext(ctx).
		Table("profiler_banks").
		Select("profiler_banks.id, profiler_banks.name")
	if term != "" {
		tx = tx.Where("profiler_banks.name ILIKE ?", "%"+term+"%")
	}
	var rows []dto.NameRead
	err := tx.Order("profiler_banks.name ASC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.NameRead, 0, len(rows))
	for i := range rows {
		result = append(result, &rows[i])
	}
	return result, nil
}
