package profiler

import (
	"context"
	"errors"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
	profilerrepo "github.com/finops/backoffice/pkg/repository/profiler"
	"gorm.io/gorm"
)

const profileCountJoin = "LEFT JOIN (SELECT profile_id, COUNT(*) AS transaction_count " +
	"FROM profiler_transactions GROUP BY profile_id) tc ON tc.profile_id = profiler_profiles.id"

const profileReadColumns = "profiler_profiles.id, profiler_profiles.client_id, " +
	"profiler_clients.name AS client_name, profiler_profiles.bank_id, " +
	"profiler_banks.name AS bank_name, profiler_profiles.credit_card_number, " +
	"profiler_profiles.pre_planned_deposit_amount, profiler_profiles.carry_forward_enabled, " +
	"profiler_profiles.status, profiler_profiles.created_at, profiler_profiles.updated_at, " +
	"COALESCE(tc.transaction_count, 0) AS transaction_count"

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns the GORM-backed profile repository.
func NewProfileRepository(db *gorm.DB) profilerrepo.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("profiler_profiles").
		Joins("JOIN profiler_clients ON profiler_clients.id = profiler_profiles.client_id").
		Joins("JOIN profiler_banks ON profiler_banks.id = profiler_profiles.bank_id").
		Joins(profileCountJoin)
}

func (r *profileRepository) Create(
	ctx context.Context,
	create *dto.ProfileCreate,
) (*dto.ProfileRead, error) {
	status := create.Status
	if status == "" {
		status = "active"
	}
	m := &Profile{
		ClientID:                create.ClientID,
		BankID:                  create.BankID,
		CreditCardNumber:        create.CreditCardNumber,
		PrePlannedDepositAmount: create.PrePlannedDepositAmount,
		CarryForwardEnabled:     create.CarryForwardEnabled,
		Status:                  status,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

func (r *profileRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.ProfileRead, error) {
	var row profileRow
	err := r.joined(ctx).
		Select(profileReadColumns).
		Where("profiler_profiles.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapProfileRow(&row), nil
}

func (r *profileRepository) Update(
	ctx context.Context,
	id int64,
	update *dto.ProfileUpdate,
) (*dto.ProfileRead, error) {
	res := r.db.WithContext(ctx).Model(&Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"client_id":                  update.ClientID,
			"bank_id":                    update.BankID,
			"credit_card_number":         update.CreditCardNumber,
			"pre_planned_deposit_amount": update.PrePlannedDepositAmount,
			"carry_forward_enabled":      update.CarryForwardEnabled,
			"status":                     update.Status,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

// Delete is conditioned on the profile owning zero transactions.
func (r *profileRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"DELETE FROM profiler_profiles WHERE id = ? AND NOT EXISTS "+
			"(SELECT 1 FROM profiler_transactions WHERE profiler_transactions.profile_id = profiler_profiles.id)", id)
	return res.RowsAffected, res.Error
}

func (r *profileRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Profile{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *profileRepository) listQuery(ctx context.Context, q dto.ProfileListQuery) *gorm.DB {
	tx := r.joined(ctx)
	if q.Status != "" {
		tx = tx.Where("profiler_profiles.status = ?", q.Status)
	}
	if len(q.ClientIDs) > 0 {
		tx = tx.Where("profiler_profiles.client_id IN ?", q.ClientIDs)
	}
	if len(q.BankIDs) > 0 {
		tx = tx.Where("profiler_profiles.bank_id IN ?", q.BankIDs)
	}
	if cond, args, ok := query.Profiles.SearchCondition(q.Search); ok {
		tx = tx.Where(cond, args...)
	}
	return tx
}

func (r *profileRepository) ListPaginated(
	ctx context.Context,
	q dto.ProfileListQuery,
) ([]*dto.ProfileRead, int64, error) {
	var total int64
	if err := r.listQuery(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []profileRow
	err := r.listQuery(ctx, q).
		Select(profileReadColumns).
		Order(q.Sort.Clause(query.Profiles.IDColumn)).
		Limit(q.Page.Limit).
		Offset(q.Page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*dto.ProfileRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapProfileRow(&rows[i]))
	}
	return result, total, nil
}
