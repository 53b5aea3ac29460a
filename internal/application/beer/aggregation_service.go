package beer

import (
	"context"

	"github.com/google/uuid"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/async"
)

// ListAndFeaturedResult is the combined response of a list query and a
// featured beer lookup. Featured is null when the id did not resolve.
type ListAndFeaturedResult struct {
	Page     shared.Paginated[BeerResponse] `json:"page"`
	Featured *BeerResponse                  `json:"featured"`
}

// AggregationService combines concurrent sub-queries into single responses
// for UI rendering.
type AggregationService struct {
	async *AsyncService
}

// NewAggregationService creates a new AggregationService
func NewAggregationService(asyncService *AsyncService) *AggregationService {
	return &AggregationService{async: asyncService}
}

// ListAndFeatured issues the list query and the featured lookup concurrently
// and joins both results. A featured beer that does not exist yields a null
// featured value; any sub-query failure fails the whole call with no partial
// result.
func (s *AggregationService) ListAndFeatured(ctx context.Context, query ListBeersQuery, featuredID uuid.UUID) (*ListAndFeaturedResult, error) {
	listFuture := s.async.List(ctx, query)
	featuredFuture := s.async.Get(ctx, featuredID)

	page, featured, err := async.Combine2(ctx, listFuture, featuredFuture)
	if err != nil {
		return nil, err
	}

	return &ListAndFeaturedResult{Page: page, Featured: featured}, nil
}
