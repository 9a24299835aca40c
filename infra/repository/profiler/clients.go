package profiler

import (
	"context"
	"errors"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	profilerrepo "github.com/finops/backoffice/pkg/repository/profiler"
	"gorm.io/gorm"
)

const clientCountJoin = "LEFT JOIN (SELECT client_id, COUNT(*) AS profile_count " +
	"FROM profiler_profiles GROUP BY client_id) pc ON pc.client_id = profiler_clients.id"

const clientReadColumns = "profiler_clients.id, profiler_clients.name, " +
	"profiler_clients.email, profiler_clients.contact, " +
	"profiler_clients.created_at, profiler_clients.updated_at, " +
	"COALESCE(pc.profile_count, 0) AS profile_count"

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository returns the GORM-backed profiler client repository.
func NewClientRepository(db *gorm.DB) profilerrepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(
	ctx context.Context,
	create *dto.ProfilerClientCreate,
) (*dto.ProfilerClientRead, error) {
	m := &Client{Name: create.Name, Email: create.Email, Contact: create.Contact}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

func (r *clientRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.ProfilerClientRead, error) {
	var row clientRow
	err := r.db.WithContext(ctx).
		Table("profiler_clients").
		Joins(clientCountJoin).
		Select(clientReadColumns).
		Where("profiler_clients.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapClientRow(&row), nil
}

func (r *clientRepository) Update(
	ctx context.Context,
	id int64,
	update *dto.ProfilerClientUpdate,
) (*dto.ProfilerClientRead, error) {
	res := r.db.WithContext(ctx).Model(&Client{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":    update.Name,
			"email":   update.Email,
			"contact": update.Contact,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

// Delete is conditioned on the client owning zero profiles.
func (r *clientRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"DELETE FROM profiler_clients WHERE id = ? AND NOT EXISTS "+
			"(SELECT 1 FROM profiler_profiles WHERE profiler_profiles.client_id = profiler_clients.id)", id)
	return res.RowsAffected, res.Error
}

func (r *clientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Client{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *clientRepository) listQuery(ctx context.Context, q dto.EntityListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Table("profiler_clients").Joins(clientCountJoin)
	if cond, args, ok := query.ProfilerClients.SearchCondition(q.Search); ok {
		tx = tx.Where(cond, args...)
	}
	if q.Dates != nil {
		if q.Dates.From != nil {
			tx = tx.Where("profiler_clients.created_at >= ?", *q.Dates.From)
		}
		if ub := q.Dates.UpperBound(); ub != nil {
			tx = tx.Where("profiler_clients.created_at < ?", *ub)
		}
	}
	return tx
}

func (r *clientRepository) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.ProfilerClientRead, int64, error) {
	var total int64
	if err := r.listQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []clientRow
	err := r.listQuery(ctx, q).
		Select(clientReadColumns).
		Order(q.Sort.Clause(query.ProfilerClients.IDColumn)).
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*dto.ProfilerClientRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapClientRow(&rows[i]))
	}
	return result, total, nil
}

func (r *clientRepository) Autocomplete(
	ctx context.Context,
	term string,
	limit int,
) ([]*dto.NameRead, error) {
	tx := r.db.WithContext(ctx).
		Table("profiler_clients").
		Select("profiler_clients.id, profiler_clients.name")
	if term != "" {
		tx = tx.Where("profiler_clients.name ILIKE ?", "%"+term+"%")
	}
	var rows []dto.NameRead
	err := tx.Order("profiler_clients.name ASC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.NameRead, 0, len(rows))
	for i := range rows {
		result = append(result, &rows[i])
	}
	return result, nil
}
