package profiler

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/domain"
	"github.com/finops/backoffice/pkg/dto"
	profilerrepo "github.com/finops/backoffice/pkg/repository/profiler"
)

// TransactionService provides profiler ledger operations. The withdraw
// charge amount is never taken from the request: it is computed here from
// the amount and the submitted percentage, and stays nil for deposits.
type TransactionService struct {
	repo     profilerrepo.TransactionRepository
	profiles profilerrepo.ProfileRepository
	logger   *slog.Logger
}

// NewTransactionService creates a profiler TransactionService.
func NewTransactionService(
	repo profilerrepo.TransactionRepository,
	profiles profilerrepo.ProfileRepository,
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{repo: repo, profiles: profiles, logger: logger}
}

// chargeFor computes the server-side withdraw charge. Deposits carry no
// charge regardless of what the request submitted.
func chargeFor(txType string, amount decimal.Decimal, pct *decimal.Decimal) (*decimal.Decimal, error) {
	if txType != string(domain.ProfilerWithdraw) {
		return nil, nil
	}
	if pct == nil {
		zero := decimal.Zero
		return &zero, nil
	}
	if pct.IsNegative() {
		return nil, apperr.ValidationField("withdraw_charges_percentage", "must not be negative")
	}
	charge := domain.WithdrawCharge(amount, *pct)
	return &charge, nil
}

func (s *TransactionService) checkProfile(ctx context.Context, profileID int64) error {
	ok, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return apperr.Database(err)
	}
	if !ok {
		return apperr.ValidationField("profile_id", "referenced profile does not exist")
	}
	return nil
}

func (s *TransactionService) Create(
	ctx context.Context,
	create *dto.ProfilerTransactionCreate,
) (*dto.ProfilerTransactionRead, error) {
	if !create.Amount.IsPositive() {
		return nil, apperr.ValidationField("amount", "must be greater than zero")
	}
	if err := s.checkProfile(ctx, create.ProfileID); err != nil {
		return nil, err
	}
	charge, err := chargeFor(create.TransactionType, create.Amount, create.WithdrawChargesPercentage)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, create, charge)
	if err != nil {
		s.logger.Error("profiler transaction create failed", "error", err)
		return nil, apperr.Database(err)
	}
	s.logger.Info("profiler transaction created",
		"id", created.ID,
		"profile_id", created.ProfileID,
		"type", created.TransactionType)
	return created, nil
}

func (s *TransactionService) Get(ctx context.Context, id int64) (*dto.ProfilerTransactionRead, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if t == nil {
		return nil, apperr.NotFound("profiler transaction not found")
	}
	return t, nil
}

func (s *TransactionService) Update(
	ctx context.Context,
	id int64,
	update *dto.ProfilerTransactionUpdate,
) (*dto.ProfilerTransactionRead, error) {
	if !update.Amount.IsPositive() {
		return nil, apperr.ValidationField("amount", "must be greater than zero")
	}
	if err := s.checkProfile(ctx, update.ProfileID); err != nil {
		return nil, err
	}
	charge, err := chargeFor(update.TransactionType, update.Amount, update.WithdrawChargesPercentage)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, update, charge)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("profiler transaction not found")
	}
	return updated, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Database(err)
	}
	if rows == 0 {
		return apperr.NotFound("profiler transaction not found")
	}
	s.logger.Info("profiler transaction deleted", "id", id)
	return nil
}

func (s *TransactionService) ListPaginated(
	ctx context.Context,
	q dto.ProfilerTransactionListQuery,
) ([]*dto.ProfilerTransactionRead, int64, error) {
	result, total, err := s.repo.ListPaginated(ctx, q)
	if err != nil {
		return nil, 0, apperr.Database(err)
	}
	return result, total, nil
}

// Summary aggregates one profile's deposits, withdrawals and charges into
// a running balance.
func (s *TransactionService) Summary(ctx context.Context, profileID int64) (*dto.ProfileSummary, error) {
	ok, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if !ok {
		return nil, apperr.NotFound("profile not found")
	}
	summary, err := s.repo.Summary(ctx, profileID)
	if err != nil {
		return nil, apperr.Database(err)
	}
	return summary, nil
}
