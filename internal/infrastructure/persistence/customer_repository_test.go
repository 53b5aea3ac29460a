package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/beerworks/backend/internal/domain/customer"
	"github.com/beerworks/backend/internal/domain/shared"
)

func setupCustomerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE customers (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL,
			email TEXT NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func mustNewCustomer(t *testing.T, name, email string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, email)
	require.NoError(t, err)
	return c
}

func TestGormCustomerRepository_SaveAndFindByID(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	c := mustNewCustomer(t, "John Thompson", "john@example.com")
	require.NoError(t, repo.Save(ctx, c))

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Thompson", found.Name)
	assert.Equal(t, "john@example.com", found.Email)
}

func TestGormCustomerRepository_FindByIDNotFound(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewGormCustomerRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormCustomerRepository_FindAll(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustNewCustomer(t, "John Thompson", "john@example.com")))
	require.NoError(t, repo.Save(ctx, mustNewCustomer(t, "Dale Seebach", "dale@example.com")))
	require.NoError(t, repo.Save(ctx, mustNewCustomer(t, "Anita Junemann", "anita@example.com")))

	t.Run("lists all", func(t *testing.T) {
		customers, total, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, customers, 3)
	})

	t.Run("search matches name or email", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "dale"

		customers, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, customers, 1)
		assert.Equal(t, "Dale Seebach", customers[0].Name)
	})

	t.Run("sorts by whitelisted field", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "name"
		filter.OrderDir = "asc"

		customers, _, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, customers, 3)
		assert.Equal(t, "Anita Junemann", customers[0].Name)
	})

	t.Run("rejects non-whitelisted order field", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "email; DROP TABLE customers"

		_, _, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
	})
}

func TestGormCustomerRepository_DeleteByID(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	c := mustNewCustomer(t, "John Thompson", "john@example.com")
	require.NoError(t, repo.Save(ctx, c))

	deleted, err := repo.DeleteByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
