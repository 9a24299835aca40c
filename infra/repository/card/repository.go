package card

import (
	"context"
	"errors"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	cardrepo "github.com/finops/backoffice/pkg/repository/card"
	"gorm.io/gorm"
)

const countJoin = "LEFT JOIN (SELECT card_id, COUNT(*) AS transaction_count " +
	"FROM transactions WHERE card_id IS NOT NULL GROUP BY card_id) tc ON tc.card_id = cards.id"

const readColumns = "cards.id, cards.name, cards.created_at, cards.updated_at, " +
	"COALESCE(tc.transaction_count, 0) AS transaction_count"

type repository struct {
	db *gorm.DB
}

// New returns the GORM-backed card repository.
func New(db *gorm.DB) cardrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.CardCreate,
) (*dto.CardRead, error) {
	m := &Card{Name: create.Name}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

func (r *repository) Get(ctx context.Context, id int64) (*dto.CardRead, error) {
	var row cardRow
	err := r.db.WithContext(ctx).
		Table("cards").
		Joins(countJoin).
		Select(readColumns).
		Where("cards.id = ?", id).
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
	update *dto.CardUpdate,
) (*dto.CardRead, error) {
	res := r.db.WithContext(ctx).Model(&Card{}).
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
		"DELETE FROM cards WHERE id = ? AND NOT EXISTS "+
			"(SELECT 1 FROM transactions WHERE transactions.card_id = cards.id)", id)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Card{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) listQuery(ctx context.Context, q dto.EntityListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Table("cards").Joins(countJoin)
	if cond, args, ok := query.Cards.SearchCondition(q.Search); ok {
		tx = tx.Where(cond, args...)
	}
	if q.Dates != nil {
		if q.Dates.From != nil {
			tx = tx.Where("cards.created_at >= ?", *q.Dates.From)
		}
		if ub := q.Dates.UpperBound(); ub != nil {
			tx = tx.Where("cards.created_at < ?", *ub)
		}
	}
	return tx
}

func (r *repository) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.CardRead, int64, error) {
	var total int64
	if err := r.listQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []cardRow
	err := r.listQuery(ctx, q).
		Select(readColumns).
		Order(q.Sort.Clause(query.Cards.IDColumn)).
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*dto.CardRead, 0, len(rows))
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
		Table("cards").
		Select("cards.id, cards.name")
	if term != "" {
		tx = tx.Where("cards.name ILIKE ?", "%"+term+"%")
	}
	var rows []dto.NameRead
	err := tx.Order("cards.name ASC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.NameRead, 0, len(rows))
	for i := range rows {
		result = append(result, &rows[i])
	}
	return result, nil
}
