// Package client provides business logic for the primary client entity.
package client

import (
	"context"
	"log/slog"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/dto"
	clientrepo "github.com/finops/backoffice/pkg/repository/client"
)

// Service provides client operations on top of the repository.
type Service struct {
	repo   clientrepo.Repository
	logger *slog.Logger
}

// New creates a client Service.
func New(repo clientrepo.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(
	ctx context.Context,
	create *dto.ClientCreate,
) (*dto.ClientRead, error) {
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		s.logger.Error("client create failed", "error", err)
		return nil, apperr.Database(err)
	}
	s.logger.Info("client created", "id", created.ID)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*dto.ClientRead, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if c == nil {
		return nil, apperr.NotFound("client not found")
	}
	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	update *dto.ClientUpdate,
) (*dto.ClientRead, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("client not found")
	}
	return updated, nil
}

// Delete is a no-op for clients that still own transactions; the guarded
// statement reports zero rows and the caller sees NOT_FOUND.
func (s *Service) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Database(err)
	}
	if rows == 0 {
		return apperr.NotFound("client not found or still referenced by transactions")
	}
	s.logger.Info("client deleted", "id", id)
	return nil
}

func (s *Service) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.ClientRead, int64, error) {
	result, total, err := s.repo.ListPaginated(ctx, q)
	if err != nil {
		return nil, 0, apperr.Database(err)
	}
	return result, total, nil
}

func (s *Service) Autocomplete(
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
