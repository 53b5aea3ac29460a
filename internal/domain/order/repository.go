package order

import (
	"context"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence operations for beer orders
type Repository interface {
	// FindByID finds an order with its lines, shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*BeerOrder, error)
	// FindAll returns one page of orders plus the total matching count
	FindAll(ctx context.Context, filter shared.Filter) ([]BeerOrder, int64, error)
	// FindByCustomer returns one page of a customer's orders
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]BeerOrder, int64, error)
	// Save inserts or updates an order together with its lines
	Save(ctx context.Context, o *BeerOrder) error
	// DeleteByID removes an order and its lines, reporting whether it existed
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
