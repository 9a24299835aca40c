// Package profiler declares the persistence contracts for the profiler
// subsystem: its client and bank namespaces, profiles, and the profiler
// ledger with per-profile accounting.
package profiler

import (
	"context"

	"github.com/finops/backoffice/pkg/dto"
	"github.com/shopspring/decimal"
)

// ClientRepository persists profiler clients. Delete is guarded on owning
// zero profiles.
type ClientRepository interface {
	Create(ctx context.Context, create *dto.ProfilerClientCreate) (*dto.ProfilerClientRead, error)
	Get(ctx context.Context, id int64) (*dto.ProfilerClientRead, error)
	Update(ctx context.Context, id int64, update *dto.ProfilerClientUpdate) (*dto.ProfilerClientRead, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListPaginated(ctx context.Context, q dto.EntityListQuery) ([]*dto.ProfilerClientRead, int64, error)
	Autocomplete(ctx context.Context, term string, limit int) ([]*dto.NameRead, error)
}

// BankRepository persists profiler banks. Delete is guarded on owning zero
// profiles.
type BankRepository interface {
	Create(ctx context.Context, create *dto.ProfilerBankCreate) (*dto.ProfilerBankRead, error)
	Get(ctx context.Context, id int64) (*dto.ProfilerBankRead, error)
	Update(ctx context.Context, id int64, update *dto.ProfilerBankUpdate) (*dto.ProfilerBankRead, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListPaginated(ctx context.Context, q dto.EntityListQuery) ([]*dto.ProfilerBankRead, int64, error)
	Autocomplete(ctx context.Context, term string, limit int) ([]*dto.NameRead, error)
}

// ProfileRepository persists profiler profiles. Delete is guarded on owning
// zero transactions.
type ProfileRepository interface {
	Create(ctx context.Context, create *dto.ProfileCreate) (*dto.ProfileRead, error)
	Get(ctx context.Context, id int64) (*dto.ProfileRead, error)
	Update(ctx context.Context, id int64, update *dto.ProfileUpdate) (*dto.ProfileRead, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListPaginated(ctx context.Context, q dto.ProfileListQuery) ([]*dto.ProfileRead, int64, error)
}

// TransactionRepository persists the profiler ledger and aggregates the
// per-profile deposit/withdraw accounting. chargesAmount is the server-side
// computed withdraw charge (nil for deposits).
type TransactionRepository interface {
	Create(ctx context.Context, create *dto.ProfilerTransactionCreate, chargesAmount *decimal.Decimal) (*dto.ProfilerTransactionRead, error)
	Get(ctx context.Context, id int64) (*dto.ProfilerTransactionRead, error)
	Update(ctx context.Context, id int64, update *dto.ProfilerTransactionUpdate, chargesAmount *decimal.Decimal) (*dto.ProfilerTransactionRead, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListPaginated(ctx context.Context, q dto.ProfilerTransactionListQuery) ([]*dto.ProfilerTransactionRead, int64, error)
	Summary(ctx context.Context, profileID int64) (*dto.ProfileSummary, error)
}
