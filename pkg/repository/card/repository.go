// Package card declares the persistence contract for the primary card
// entity.
package card

import (
	"context"

	"github.com/finops/backoffice/pkg/dto"
)

// Repository is the persistence interface for cards. Delete is guarded the
// same way bank deletion is.
type Repository interface {
	Create(ctx context.Context, create *dto.CardCreate) (*dto.CardRead, error)
	Get(ctx context.Context, id int64) (*dto.CardRead, error)
	Update(ctx context.Context, id int64, update *dto.CardUpdate) (*dto.CardRead, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListPaginated(ctx context.Context, q dto.EntityListQuery) ([]*dto.CardRead, int64, error)
	Autocomplete(ctx context.Context, term string, limit int) ([]*dto.NameRead, error)
}
