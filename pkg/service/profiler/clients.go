// Package profiler provides business logic for the profiler subsystem: its
// client and bank namespaces, profiles, and the profiler ledger with
// server-side withdraw charge computation.
package profiler

import (
	"context"
	"log/slog"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/dto"
	profilerrepo "github.com/finops/backoffice/pkg/repository/profiler"
)

// ClientService provides profiler client operations.
type ClientService struct {
	repo   profilerrepo.ClientRepository
	logger *slog.Logger
}

// NewClientService creates a profiler ClientService.
func NewClientService(repo profilerrepo.ClientRepository, logger *slog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Create(
	ctx context.Context,
	create *dto.ProfilerClientCreate,
) (*dto.ProfilerClientRead, error) {
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		s.logger.Error("profiler client create failed", "error", err)
		return nil, apperr.Database(err)
	}
	s.logger.Info("profiler client created", "id", created.ID)
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*dto.ProfilerClientRead, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if c == nil {
		return nil, apperr.NotFound("profiler client not found")
	}
	return c, nil
}

func (s *ClientService) Update(
	ctx context.Context,
	id int64,
	update *dto.ProfilerClientUpdate,
) (*dto.ProfilerClientRead, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("profiler client not found")
	}
	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Database(err)
	}
	if rows == 0 {
		return apperr.NotFound("profiler client not found or still owns profiles")
	}
	s.logger.Info("profiler client deleted", "id", id)
	return nil
}

func (s *ClientService) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.ProfilerClientRead, int64, error) {
	result, total, err := s.repo.ListPaginated(ctx, q)
	if err != nil {
		return nil, 0, apperr.Database(err)
	}
	return result, total, nil
}

func (s *ClientService) Autocomplete(
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
