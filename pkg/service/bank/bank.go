// Package bank provides business logic for the primary bank entity.
package bank

import (
	"context"
	"log/slog"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/dto"
	bankrepo "github.com/finops/backoffice/pkg/repository/bank"
)

// Service provides bank operations on top of the repository.
type Service struct {
	repo   bankrepo.Repository
	logger *slog.Logger
}

// New creates a bank Service.
func New(repo bankrepo.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(
	ctx context.Context,
	create *dto.BankCreate,
) (*dto.BankRead, error) {
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		s.logger.Error("bank create failed", "error", err)
		return nil, apperr.Database(err)
	}
	s.logger.Info("bank created", "id", created.ID)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*dto.BankRead, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if b == nil {
		return nil, apperr.NotFound("bank not found")
	}
	return b, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	update *dto.BankUpdate,
) (*dto.BankRead, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("bank not found")
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Database(err)
	}
	if rows == 0 {
		return apperr.NotFound("bank not found or still referenced by transactions")
	}
	s.logger.Info("bank deleted", "id", id)
	return nil
}

func (s *Service) ListPaginated(
	ctx context.Context,
	q dto.EntityListQuery,
) ([]*dto.BankRead, int64, error) {
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
