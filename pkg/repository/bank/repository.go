// Package bank declares the persistence contract for the primary bank
// entity.
package bank

import (
	"context"

	"github.com/finops/backoffice/pkg/dto"
)

// Repository is the persistence interface for banks. Delete is guarded: a
// bank with referencing transactions is left untouched and zero rows are
// reported.
type Repository interface {
	Create(ctx context.Context, create *dto.BankCreate) (*dto.BankRead, error)
	Get(ctx context.Context, id int64) (*dto.BankRead, error)
	Update(ctx context.Context, id int64, update *dto.BankUpdate) (*dto.BankRead, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListPaginated(ctx context.Context, q dto.EntityListQuery) ([]*dto.BankRead, int64, error)
	Autocomplete(ctx context.Context, term string, limit int) ([]*dto.NameRead, error)
}
