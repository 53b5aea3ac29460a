package beer

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
)

// MockBeerRepository is a mock implementation of beer.Repository
type MockBeerRepository struct {
	mock.Mock
}

func (m *MockBeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*beer.Beer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*beer.Beer), args.Error(1)
}

func (m *MockBeerRepository) FindAll(ctx context.Context, filter beer.ListFilter) ([]beer.Beer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]beer.Beer), args.Get(1).(int64), args.Error(2)
}

func (m *MockBeerRepository) Save(ctx context.Context, b *beer.Beer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBeerRepository) SaveBatch(ctx context.Context, beers []*beer.Beer) error {
	args := m.Called(ctx, beers)
	return args.Error(0)
}

func (m *MockBeerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBeerRepository) ExistsByUPC(ctx context.Context, upc string) (bool, error) {
	args := m.Called(ctx, upc)
	return args.Bool(0), args.Error(1)
}

// recordingCache counts clears and stores entries in memory
type recordingCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	clears  int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string][]byte)}
}

func (c *recordingCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok, nil
}

func (c *recordingCache) Put(_ context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

func (c *recordingCache) Clear(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
	c.clears++
	return nil
}

func (c *recordingCache) clearCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clears
}

// recordingPublisher captures published events in order
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) published() []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.DomainEvent(nil), p.events...)
}
