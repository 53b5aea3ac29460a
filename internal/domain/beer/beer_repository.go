package beer

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter describes the filtering and pagination applied to beer listings
type ListFilter struct {
	Name     string // optional substring match
	Style    *Style // optional exact match
	Page     int    // 1-based
	PageSize int
}

// Repository defines persistence operations for beers
type Repository interface {
	// FindByID finds a beer by its ID, shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Beer, error)
	// FindAll returns one page of beers plus the total matching count
	FindAll(ctx context.Context, filter ListFilter) ([]Beer, int64, error)
	// Save inserts or updates a single beer
	Save(ctx context.Context, b *Beer) error
	// SaveBatch persists a chunk of new beers as one batched write in a
	// single transaction
	SaveBatch(ctx context.Context, beers []*Beer) error
	// DeleteByID removes a beer, reporting whether it existed
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	// ExistsByUPC reports whether any beer carries the given UPC
	ExistsByUPC(ctx context.Context, upc string) (bool, error)
}
