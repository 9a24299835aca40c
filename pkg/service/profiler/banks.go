package profiler

import (
	"context"
	"log/slog"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/dto"
	profilerrepo "github.com/finops/backoffice/pkg/repository/profiler"
)

// BankService provides profiler bank operations.
type BankService struct {
	repo   profilerrepo.BankRepository
	logger *slog.Logger
}

// NewBankService creates a profiler BankService.
func NewBankService(repo profilerrepo.BankRepository, logger *slog.Logger) *BankService {
	return &BankService{repo: repo, logger: logger}
}

func (s *BankService) Create(
	ctx context.Context,
	create *dto.ProfilerBankCreate,
) (*dto.ProfilerBankRead, error) {
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		s.logger.Error("profiler bank create failed", "error", err)
		return nil, apperr.Database(err)
	}
	s.logger.Info("profiler bank created", "id", created.ID)
	return created, nil
}

func (s *BankService) Get(ctx context.Context, id int64) (*dto.ProfilerBankRead, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if b == nil {
		return nil, apperr.NotFound("profiler bank not found")
	}
	return b, nil
}

func (s *BankService) Update(
	ctx context.Context,
	id int64,
	update *dto.ProfilerBankUpdate,
) (*dto.ProfilerBankRead, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("profiler bank not found")
	}
	return updated, nil
}

func (s *BankService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Database(err)
	}
	if rows == 0 {
		return apperr.NotFound("profiler bank not found or still owns profiles")
	}
	s.logger.Info("profiler bank deleted", "id", id)
	return nil
}

func (s *BankService) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.ProfilerBankRead, int64, error) {
	result, total, err := s.repo.ListPaginated(ctx, q)
	if err != nil {
		return nil, 0, apperr.Database(err)
	}
	return result, total, nil
}

func (s *BankService) Autocomplete(
	ctx context.Context,
	term string,
	limit int,
) ([]*dto.NameRead, error) {
	result, err := s.repo.Autocomplete(ctx, term, limit)
	if err != nil {
		return nil, apperr.Database(err)
	}
	return result, nil
}
