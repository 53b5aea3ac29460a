package customer

import (
	"context"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence operations for customers
type Repository interface {
	// FindByID finds a customer by ID, shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	// FindAll returns one page of customers plus the total matching count
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)
	// Save inserts or updates a customer
	Save(ctx context.Context, c *Customer) error
	// DeleteByID removes a customer, reporting whether it existed
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
