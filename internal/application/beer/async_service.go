package beer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/async"
)

// AsyncService exposes every synchronous beer operation as a future scheduled
// on the worker pool. It adds no behavior of its own: failures propagate as
// failed futures with no retry or timeout policy.
type AsyncService struct {
	service *Service
	bulk    *BulkService
	pool    *async.Pool
}

// NewAsyncService creates a new AsyncService
func NewAsyncService(service *Service, bulk *BulkService, pool *async.Pool) *AsyncService {
	return &AsyncService{service: service, bulk: bulk, pool: pool}
}

// List schedules a list query
func (s *AsyncService) List(ctx context.Context, query ListBeersQuery) *async.Future[shared.Paginated[BeerResponse]] {
	return async.Submit(s.pool, func() (shared.Paginated[BeerResponse], error) {
		return s.service.List(ctx, query)
	})
}

// Get schedules a lookup by ID, resolving to (nil, nil) when absent
func (s *AsyncService) Get(ctx context.Context, id uuid.UUID) *async.Future[*BeerResponse] {
	return async.Submit(s.pool, func() (*BeerResponse, error) {
		return absentAsNil(s.service.Get(ctx, id))
	})
}

// Create schedules a create
func (s *AsyncService) Create(ctx context.Context, req CreateBeerRequest, principal shared.Principal) *async.Future[*BeerResponse] {
	return async.Submit(s.pool, func() (*BeerResponse, error) {
		return s.service.Create(ctx, req, principal)
	})
}

// Update schedules a full update, resolving to (nil, nil) when absent
func (s *AsyncService) Update(ctx context.Context, id uuid.UUID, req UpdateBeerRequest, principal shared.Principal) *async.Future[*BeerResponse] {
	return async.Submit(s.pool, func() (*BeerResponse, error) {
		return absentAsNil(s.service.Update(ctx, id, req, principal))
	})
}

// Patch schedules a partial update, resolving to (nil, nil) when absent
func (s *AsyncService) Patch(ctx context.Context, id uuid.UUID, req PatchBeerRequest, principal shared.Principal) *async.Future[*BeerResponse] {
	return async.Submit(s.pool, func() (*BeerResponse, error) {
		return absentAsNil(s.service.Patch(ctx, id, req, principal))
	})
}

// Delete schedules a delete, resolving to whether the beer existed
func (s *AsyncService) Delete(ctx context.Context, id uuid.UUID, principal shared.Principal) *async.Future[bool] {
	return async.Submit(s.pool, func() (bool, error) {
		return s.service.Delete(ctx, id, principal)
	})
}

// SaveAllChunked schedules a bulk import
func (s *AsyncService) SaveAllChunked(ctx context.Context, principal shared.Principal, dtos []CreateBeerRequest, chunkSize int) *async.Future[[]BeerResponse] {
	return async.Submit(s.pool, func() ([]BeerResponse, error) {
		return s.bulk.SaveAllChunked(ctx, principal, dtos, chunkSize)
	})
}

// absentAsNil maps shared.ErrNotFound to a resolved nil result
func absentAsNil(resp *BeerResponse, err error) (*BeerResponse, error) {
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return resp, err
}
