// Package client declares the persistence contract for the primary client
// entity.
package client

import (
	"context"

	"github.com/finops/backoffice/pkg/dto"
)

// Repository is the persistence interface for clients. Reads always include
// the derived transaction count; Delete reports rows affected so callers can
// distinguish a no-op from a removal.
type Repository interface {
	Create(ctx context.Context, create *dto.ClientCreate) (*dto.ClientRead, error)
	Get(ctx context.Context, id int64) (*dto.ClientRead, error)
	Update(ctx context.Context, id int64, update *dto.ClientUpdate) (*dto.ClientRead, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListPaginated(ctx context.Context, q dto.EntityListQuery) ([]*dto.ClientRead, int64, error)
	Autocomplete(ctx context.Context, term string, limit int) ([]*dto.NameRead, error)
}
