package client

import (
	"context"
	"errors"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	clientrepo "github.com/finops/backoffice/pkg/repository/client"
	"gorm.io/gorm"
)

const countJoin = "LEFT JOIN (SELECT client_id, COUNT(*) AS transaction_count " +
	"FROM transactions GROUP BY client_id) tc ON tc.client_id = clients.id"

const readColumns = "clients.id, clients.name, clients.email, clients.contact, " +
	"clients.address, clients.created_at, clients.updated_at, " +
	"COALESCE(tc.transaction_count, 0) AS transaction_count"

type repository struct {
	db *gorm.DB
}

// New returns the GORM-backed client repository.
func New(db *gorm.DB) clientrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.ClientCreate,
) (*dto.ClientRead, error) {
	m := &Client{
		Name:    create.Name,
		Email:   create.Email,
		Contact: create.Contact,
		Address: create.Address,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

func (r *repository) Get(
	ctx context.Context,
	id int64,
) (*dto.ClientRead, error) {
	var row clientRow
	err := r.db.WithContext(ctx).
		Table("clients").
		Joins(countJoin).
		Select(readColumns).
		Where("clients.id = ?", id).
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
	update *dto.ClientUpdate,
) (*dto.ClientRead, error) {
	res := r.db.WithContext(ctx).Model(&Client{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":    update.Name,
			"email":   update.Email,
			"contact": update.Contact,
			"address": update.Address,
		})
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
		"DELETE FROM clients WHERE id = ? AND NOT EXISTS "+
			"(SELECT 1 FROM transactions WHERE transactions.client_id = clients.id)", id)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Client{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// listQuery builds the shared predicate; calling it twice guarantees the
// data query and the count query filter identically.
func (r *repository) listQuery(ctx context.Context, q dto.EntityListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Table("clients").Joins(countJoin)
	if cond, args, ok := query.Clients.SearchCondition(q.Search); ok {
		tx = tx.Where(cond, args...)
	}
	if q.Dates != nil {
		if q.Dates.From != nil {
			tx = tx.Where("clients.created_at >= ?", *q.Dates.From)
		}
		if ub := q.Dates.UpperBound(); ub != nil {
			tx = tx.Where("clients.created_at < ?", *ub)
		}
	}
	return tx
}

func (r *repository) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.ClientRead, int64, error) {
	var total int64
	if err := r.listQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []clientRow
	err := r.listQuery(ctx, q).
		Select(readColumns).
		Order(q.Sort.Clause(query.Clients.IDColumn)).
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*dto.ClientRead, 0, len(rows))
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
		Table("clients").
		Select("clients.id, clients.name")
	if term != "" {
		tx = tx.Where("clients.name ILIKE ?", "%"+term+"%")
	}
	var rows []dto.NameRead
	err := tx.Order("clients.name ASC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.NameRead, 0, len(rows))
	for i := range rows {
		result = append(result, &rows[i])
	}
	return result, nil
}
