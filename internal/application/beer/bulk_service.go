package beer

import (
	"context"

	"go.uber.org/zap"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/cache"
)

// DefaultChunkSize is used when the caller passes a non-positive chunk size.
const DefaultChunkSize = 1000

// BulkService imports batches of beers in contiguous chunks. Each chunk is
// one transaction: a failure in chunk N leaves chunks 1..N-1 committed, so
// callers must treat bulk import as non-atomic.
type BulkService struct {
	repo   beer.Repository
	cache  cache.BeerListCache
	events shared.EventPublisher
	logger *zap.Logger
}

// NewBulkService creates a new BulkService
func NewBulkService(repo beer.Repository, listCache cache.BeerListCache, events shared.EventPublisher, logger *zap.Logger) *BulkService {
	if listCache == nil {
		listCache = cache.NewNoopListCache()
	}
	return &BulkService{
		repo:   repo,
		cache:  listCache,
		events: events,
		logger: logger,
	}
}

// SaveAllChunked persists the given DTOs as new beers in chunks of at most
// chunkSize, preserving input order. Per chunk it clears the list cache,
// writes the chunk in one transaction, and publishes one created event per
// persisted row carrying the principal captured for that chunk. An empty
// input returns an empty result with no side effects.
func (s *BulkService) SaveAllChunked(ctx context.Context, principal shared.Principal, dtos []CreateBeerRequest, chunkSize int) ([]BeerResponse, error) {
	if len(dtos) == 0 {
		return []BeerResponse{}, nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	results := make([]BeerResponse, 0, len(dtos))

	for start := 0; start < len(dtos); start += chunkSize {
		end := start + chunkSize
		if end > len(dtos) {
			end = len(dtos)
		}

		chunk, err := s.saveChunk(ctx, principal, dtos[start:end])
		if err != nil {
			s.logger.Error("bulk import chunk failed",
				zap.Int("offset", start),
				zap.Int("size", end-start),
				zap.Int("committed", len(results)),
				zap.Error(err),
			)
			return nil, err
		}
		results = append(results, chunk...)
	}

	return results, nil
}

func (s *BulkService) saveChunk(ctx context.Context, principal shared.Principal, dtos []CreateBeerRequest) ([]BeerResponse, error) {
	// Clear before writing so no reader observes a page computed before
	// this chunk's rows land
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("beer list cache clear failed", zap.Error(err))
	}

	beers := make([]*beer.Beer, len(dtos))
	for i, dto := range dtos {
		b, err := beer.NewBeer(dto.Name, dto.Style, dto.UPC, dto.Price)
		if err != nil {
			return nil, err
		}
		if dto.QuantityOnHand != nil {
			if err := b.SetQuantityOnHand(*dto.QuantityOnHand); err != nil {
				return nil, err
			}
		}
		beers[i] = b
	}

	if err := s.repo.SaveBatch(ctx, beers); err != nil {
		return nil, err
	}

	responses := make([]BeerResponse, len(beers))
	for i, b := range beers {
		if err := s.events.Publish(ctx, beer.NewCreatedEvent(b, principal)); err != nil {
			s.logger.Warn("beer created event publish failed",
				zap.Stringer("beer_id", b.ID), zap.Error(err))
		}
		responses[i] = *ToBeerResponse(b, true)
	}

	return responses, nil
}
