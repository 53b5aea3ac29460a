package beer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/cache"
)

// Service handles beer-related business operations
type Service struct {
	repo   beer.Repository
	cache  cache.BeerListCache
	events shared.EventPublisher
	logger *zap.Logger
}

// NewService creates a new beer Service
func NewService(repo beer.Repository, listCache cache.BeerListCache, events shared.EventPublisher, logger *zap.Logger) *Service {
	if listCache == nil {
		listCache = cache.NewNoopListCache()
	}
	return &Service{
		repo:   repo,
		cache:  listCache,
		events: events,
		logger: logger,
	}
}

// List returns one page of beers matching the query. Pages are served from
// the list cache when a previously computed entry is still valid.
func (s *Service) List(ctx context.Context, query ListBeersQuery) (shared.Paginated[BeerResponse], error) {
	query = query.Normalized()
	key := query.CacheKey()

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("beer list cache read failed", zap.Error(err))
	} else if ok {
		var page shared.Paginated[BeerResponse]
		if err := json.Unmarshal(data, &page); err == nil {
			return page, nil
		}
		s.logger.Warn("discarding undecodable beer list cache entry", zap.String("key", key))
	}

	beers, total, err := s.repo.FindAll(ctx, query.toListFilter())
	if err != nil {
		return shared.Paginated[BeerResponse]{}, err
	}

	items := make([]BeerResponse, len(beers))
	for i := range beers {
		items[i] = *ToBeerResponse(&beers[i], query.ShowInventory)
	}
	page := shared.NewPaginated(items, total, query.Page, query.PageSize)

	if data, err := json.Marshal(page); err == nil {
		if err := s.cache.Put(ctx, key, data); err != nil {
			s.logger.Warn("beer list cache write failed", zap.Error(err))
		}
	}

	return page, nil
}

// Get retrieves a beer by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*BeerResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToBeerResponse(b, true), nil
}

// Create creates a new beer and publishes a created event
func (s *Service) Create(ctx context.Context, req CreateBeerRequest, principal shared.Principal) (*BeerResponse, error) {
	b, err := beer.NewBeer(req.Name, req.Style, req.UPC, req.Price)
	if err != nil {
		return nil, err
	}
	if req.QuantityOnHand != nil {
		if err := b.SetQuantityOnHand(*req.QuantityOnHand); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, beer.NewCreatedEvent(b, principal))
	return ToBeerResponse(b, true), nil
}

// Update replaces a beer's mutable fields and publishes an updated event
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateBeerRequest, principal shared.Principal) (*BeerResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.Update(req.Name, req.Style, req.UPC, req.Price); err != nil {
		return nil, err
	}
	if req.QuantityOnHand != nil {
		if err := b.SetQuantityOnHand(*req.QuantityOnHand); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, beer.NewUpdatedEvent(b, principal))
	return ToBeerResponse(b, true), nil
}

// Patch applies only the provided fields and publishes a patched event
func (s *Service) Patch(ctx context.Context, id uuid.UUID, req PatchBeerRequest, principal shared.Principal) (*BeerResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := b.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Style != nil {
		if err := b.ChangeStyle(*req.Style); err != nil {
			return nil, err
		}
	}
	if req.UPC != nil {
		if err := b.ChangeUPC(*req.UPC); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := b.ChangePrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.QuantityOnHand != nil {
		if err := b.SetQuantityOnHand(*req.QuantityOnHand); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, beer.NewPatchedEvent(b, principal))
	return ToBeerResponse(b, true), nil
}

// Delete removes a beer, reporting whether it existed, and publishes a
// deleted event when it did
func (s *Service) Delete(ctx context.Context, id uuid.UUID, principal shared.Principal) (bool, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	s.afterWrite(ctx, beer.NewDeletedEvent(b, principal))
	return true, nil
}

// afterWrite clears the list cache and publishes the write's event.
// Neither failure is allowed to fail the committed write.
func (s *Service) afterWrite(ctx context.Context, event shared.DomainEvent) {
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("beer list cache clear failed", zap.Error(err))
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("beer event publish failed",
			zap.String("event_type", event.EventType()), zap.Error(err))
	}
}
