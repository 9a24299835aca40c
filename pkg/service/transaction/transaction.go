// Package transaction provides business logic for the primary ledger:
// referential pre-checks against clients, banks and cards, amount
// validation, and the filtered report feed.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/dto"
	bankrepo "github.com/finops/backoffice/pkg/repository/bank"
	cardrepo "github.com/finops/backoffice/pkg/repository/card"
	clientrepo "github.com/finops/backoffice/pkg/repository/client"
	transactionrepo "github.com/finops/backoffice/pkg/repository/transaction"
)

// Service provides ledger operations with referential checks resolved
// before any write.
type Service struct {
	repo    transactionrepo.Repository
	clients clientrepo.Repository
	banks   bankrepo.Repository
	cards   cardrepo.Repository
	logger  *slog.Logger
}

// New creates a transaction Service.
func New(
	repo transactionrepo.Repository,
	clients clientrepo.Repository,
	banks bankrepo.Repository,
	cards cardrepo.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:    repo,
		clients: clients,
		banks:   banks,
		cards:   cards,
		logger:  logger,
	}
}

// checkReferences validates client_id and, when present, bank_id and
// card_id against their tables. Failures are reported as field-level
// validation errors, not 404s: the missing row is input data here.
func (s *Service) checkReferences(
	ctx context.Context,
	clientID int64,
	bankID, cardID *int64,
) error {
	ok, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return apperr.Database(err)
	}
	if !ok {
		return apperr.ValidationField("client_id", "referenced client does not exist")
	}
	if bankID != nil {
		ok, err := s.banks.Exists(ctx, *bankID)
		if err != nil {
			return apperr.Database(err)
		}
		if !ok {
			return apperr.ValidationField("bank_id", "referenced bank does not exist")
		}
	}
	if cardID != nil {
		ok, err := s.cards.Exists(ctx, *cardID)
		if err != nil {
			return apperr.Database(err)
		}
		if !ok {
			return apperr.ValidationField("card_id", "referenced card does not exist")
		}
	}
	return nil
}

func (s *Service) Create(
	ctx context.Context,
	create *dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	if !create.TransactionAmount.IsPositive() {
		return nil, apperr.ValidationField("transaction_amount", "must be greater than zero")
	}
	if create.WithdrawCharges.IsNegative() {
		return nil, apperr.ValidationField("withdraw_charges", "must not be negative")
	}
	if err := s.checkReferences(ctx, create.ClientID, create.BankID, create.CardID); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, create)
	if err != nil {
		s.logger.Error("transaction create failed", "error", err)
		return nil, apperr.Database(err)
	}
	s.logger.Info("transaction created",
		"id", created.ID,
		"client_id", created.ClientID,
		"type", created.TransactionType)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*dto.TransactionRead, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if t == nil {
		return nil, apperr.NotFound("transaction not found")
	}
	return t, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	update *dto.TransactionUpdate,
) (*dto.TransactionRead, error) {
	if !update.TransactionAmount.IsPositive() {
		return nil, apperr.ValidationField("transaction_amount", "must be greater than zero")
	}
	if update.WithdrawCharges.IsNegative() {
		return nil, apperr.ValidationField("withdraw_charges", "must not be negative")
	}
	if err := s.checkReferences(ctx, update.ClientID, update.BankID, update.CardID); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("transaction not found")
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Database(err)
	}
	if rows == 0 {
		return apperr.NotFound("transaction not found")
	}
	s.logger.Info("transaction deleted", "id", id)
	return nil
}

func (s *Service) ListPaginated(
	ctx context.Context,
	q dto.TransactionListQuery,
) ([]*dto.TransactionRead, int64, error) {
	result, total, err := s.repo.ListPaginated(ctx, q)
	if err != nil {
		return nil, 0, apperr.Database(err)
	}
	return result, total, nil
}

// ListForReport returns the filtered rows feeding the PDF and Excel
// exports, capped at maxRows most recent entries.
func (s *Service) ListForReport(
	ctx context.Context,
	q dto.TransactionListQuery,
	maxRows int,
) ([]*dto.TransactionRead, error) {
	result, err := s.repo.ListForReport(ctx, q, maxRows)
	if err != nil {
		return nil, apperr.Database(err)
	}
	return result, nil
}
