package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/order"
	"github.com/beerworks/backend/internal/domain/shared"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE beer_orders (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			customer_id TEXT NOT NULL,
			customer_ref TEXT,
			status TEXT NOT NULL,
			payment_amount NUMERIC NOT NULL DEFAULT 0
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE beer_order_lines (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			beer_id TEXT NOT NULL,
			beer_name TEXT NOT NULL,
			beer_style TEXT NOT NULL,
			order_quantity INTEGER NOT NULL,
			unit_price NUMERIC NOT NULL,
			amount NUMERIC NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func mustNewOrder(t *testing.T, customerID uuid.UUID, ref string) *order.BeerOrder {
	t.Helper()
	o, err := order.NewBeerOrder(customerID, ref)
	require.NoError(t, err)
	return o
}

func orderTestBeer(t *testing.T) *beer.Beer {
	t.Helper()
	b, err := beer.NewBeer("Mango Bobs", beer.StyleIPA, "0631234200036", decimal.RequireFromString("12.95"))
	require.NoError(t, err)
	return b
}

func TestGormBeerOrderRepository_SaveAndFindByID(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormBeerOrderRepository(db)
	ctx := context.Background()

	o := mustNewOrder(t, uuid.New(), "ref-001")
	require.NoError(t, o.AddLine(orderTestBeer(t), 6))
	require.NoError(t, repo.Save(ctx, o))

	found, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusNew, found.Status)
	assert.Equal(t, "ref-001", found.CustomerRef)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, 6, found.Lines[0].OrderQuantity)
	assert.True(t, found.PaymentAmount.Equal(decimal.RequireFromString("77.70")))
}

func TestGormBeerOrderRepository_FindByIDNotFound(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormBeerOrderRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormBeerOrderRepository_SaveReplacesLines(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormBeerOrderRepository(db)
	ctx := context.Background()

	o := mustNewOrder(t, uuid.New(), "")
	require.NoError(t, o.AddLine(orderTestBeer(t), 2))
	require.NoError(t, repo.Save(ctx, o))

	require.NoError(t, o.AddLine(orderTestBeer(t), 4))
	require.NoError(t, repo.Save(ctx, o))

	found, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Len(t, found.Lines, 2)
}

func TestGormBeerOrderRepository_FindByCustomer(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormBeerOrderRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	require.NoError(t, repo.Save(ctx, mustNewOrder(t, customerID, "a")))
	require.NoError(t, repo.Save(ctx, mustNewOrder(t, customerID, "b")))
	require.NoError(t, repo.Save(ctx, mustNewOrder(t, uuid.New(), "c")))

	orders, total, err := repo.FindByCustomer(ctx, customerID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, orders, 2)
}

func TestGormBeerOrderRepository_FindAllFiltersByStatus(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormBeerOrderRepository(db)
	ctx := context.Background()

	paid := mustNewOrder(t, uuid.New(), "")
	require.NoError(t, paid.TransitionTo(order.StatusPaid))
	require.NoError(t, repo.Save(ctx, paid))
	require.NoError(t, repo.Save(ctx, mustNewOrder(t, uuid.New(), "")))

	filter := shared.DefaultFilter()
	filter.Search = string(order.StatusPaid)

	orders, total, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, order.StatusPaid, orders[0].Status)
}

func TestGormBeerOrderRepository_DeleteByID(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormBeerOrderRepository(db)
	ctx := context.Background()

	o := mustNewOrder(t, uuid.New(), "")
	require.NoError(t, o.AddLine(orderTestBeer(t), 1))
	require.NoError(t, repo.Save(ctx, o))

	deleted, err := repo.DeleteByID(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var lineCount int64
	require.NoError(t, db.Table("beer_order_lines").Count(&lineCount).Error)
	assert.Equal(t, int64(0), lineCount)

	deleted, err = repo.DeleteByID(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
