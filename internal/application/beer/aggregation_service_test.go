package beer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/async"
)

func newTestAggregation(t *testing.T, repo *MockBeerRepository) (*AggregationService, *async.Pool) {
	t.Helper()
	pool := async.NewPool(4, 16, zap.NewNop())
	t.Cleanup(func() { _ = pool.Stop(context.Background()) })

	svc, _, _ := newTestService(repo)
	bulk, _, _ := newTestBulkService(repo)
	return NewAggregationService(NewAsyncService(svc, bulk, pool)), pool
}

func TestAggregationServiceListAndFeatured(t *testing.T) {
	t.Run("returns page and featured together", func(t *testing.T) {
		repo := new(MockBeerRepository)
		agg, _ := newTestAggregation(t, repo)

		featured := newTestBeer(t)
		repo.On("FindAll", mock.Anything, mock.Anything).Return([]beer.Beer{*featured}, int64(1), nil)
		repo.On("FindByID", mock.Anything, featured.ID).Return(featured, nil)

		result, err := agg.ListAndFeatured(context.Background(), ListBeersQuery{}, featured.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Page.Total)
		require.NotNil(t, result.Featured)
		assert.Equal(t, featured.ID, result.Featured.ID)
	})

	t.Run("unresolved featured id yields nil featured", func(t *testing.T) {
		repo := new(MockBeerRepository)
		agg, _ := newTestAggregation(t, repo)

		repo.On("FindAll", mock.Anything, mock.Anything).Return([]beer.Beer{}, int64(0), nil)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		result, err := agg.ListAndFeatured(context.Background(), ListBeersQuery{}, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, result.Featured)
	})

	t.Run("featured lookup failure fails the whole call", func(t *testing.T) {
		repo := new(MockBeerRepository)
		agg, _ := newTestAggregation(t, repo)

		repo.On("FindAll", mock.Anything, mock.Anything).Return([]beer.Beer{}, int64(0), nil)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		result, err := agg.ListAndFeatured(context.Background(), ListBeersQuery{}, uuid.New())
		require.Error(t, err)
		assert.Nil(t, result, "no partial result on sub-query failure")
	})

	t.Run("list failure fails the whole call", func(t *testing.T) {
		repo := new(MockBeerRepository)
		agg, _ := newTestAggregation(t, repo)

		repo.On("FindAll", mock.Anything, mock.Anything).Return([]beer.Beer{}, int64(0), errors.New("timeout"))
		repo.On("FindByID", mock.Anything, mock.Anything).Return(newTestBeer(t), nil)

		_, err := agg.ListAndFeatured(context.Background(), ListBeersQuery{}, uuid.New())
		require.Error(t, err)
	})
}
