package profiler

import (
	"context"
	"log/slog"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/dto"
	profilerrepo "github.com/finops/backoffice/pkg/repository/profiler"
)

// ProfileService provides profile operations with referential pre-checks
// against the profiler client and bank namespaces.
type ProfileService struct {
	repo    profilerrepo.ProfileRepository
	clients profilerrepo.ClientRepository
	banks   profilerrepo.BankRepository
	logger  *slog.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(
	repo profilerrepo.ProfileRepository,
	clients profilerrepo.ClientRepository,
	banks profilerrepo.BankRepository,
	logger *slog.Logger,
) *ProfileService {
	return &ProfileService{repo: repo, clients: clients, banks: banks, logger: logger}
}

func (s *ProfileService) checkReferences(ctx context.Context, clientID, bankID int64) error {
	ok, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return apperr.Database(err)
	}
	if !ok {
		return apperr.ValidationField("client_id", "referenced profiler client does not exist")
	}
	ok, err = s.banks.Exists(ctx, bankID)
	if err != nil {
		return apperr.Database(err)
	}
	if !ok {
		return apperr.ValidationField("bank_id", "referenced profiler bank does not exist")
	}
	return nil
}

func (s *ProfileService) Create(
	ctx context.Context,
	create *dto.ProfileCreate,
) (*dto.ProfileRead, error) {
	if create.PrePlannedDepositAmount.IsNegative() {
		return nil, apperr.ValidationField("pre_planned_deposit_amount", "must not be negative")
	}
	if err := s.checkReferences(ctx, create.ClientID, create.BankID); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		s.logger.Error("profile create failed", "error", err)
		return nil, apperr.Database(err)
	}
	s.logger.Info("profile created", "id", created.ID, "client_id", created.ClientID)
	return created, nil
}

func (s *ProfileService) Get(ctx context.Context, id int64) (*dto.ProfileRead, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if p == nil {
		return nil, apperr.NotFound("profile not found")
	}
	return p, nil
}

func (s *ProfileService) Update(
	ctx context.Context,
	id int64,
	update *dto.ProfileUpdate,
) (*dto.ProfileRead, error) {
	if update.PrePlannedDepositAmount.IsNegative() {
		return nil, apperr.ValidationField("pre_planned_deposit_amount", "must not be negative")
	}
	if err := s.checkReferences(ctx, update.ClientID, update.BankID); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("profile not found")
	}
	return updated, nil
}

func (s *ProfileService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Database(err)
	}
	if rows == 0 {
		return apperr.NotFound("profile not found or still owns transactions")
	}
	s.logger.Info("profile deleted", "id", id)
	return nil
}

func (s *ProfileService) ListPaginated(
	ctx context.Context,
	q dto.ProfileListQuery,
) ([]*dto.ProfileRead, int64, error) {
	result, total, err := s.repo.ListPaginated(ctx, q)
	if err != nil {
		return nil, 0, apperr.Database(err)
	}
	return result, total, nil
}
