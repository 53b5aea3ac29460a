package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
)

// MockAuditRepository is a mock implementation of beer.AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Save(ctx context.Context, audit *beer.Audit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockAuditRepository) FindByBeerID(ctx context.Context, beerID uuid.UUID) ([]beer.Audit, error) {
	args := m.Called(ctx, beerID)
	return args.Get(0).([]beer.Audit), args.Error(1)
}

func (m *MockAuditRepository) CountByEventType(ctx context.Context, auditEventType string) (int64, error) {
	args := m.Called(ctx, auditEventType)
	return args.Get(0).(int64), args.Error(1)
}

func auditTestBeer(t *testing.T) *beer.Beer {
	t.Helper()
	b, err := beer.NewBeer("Mango Bobs", beer.StyleIPA, "0631234200036", decimal.RequireFromString("12.95"))
	require.NoError(t, err)
	return b
}

func TestBeerAuditHandlerHandle(t *testing.T) {
	t.Run("patched event by alice", func(t *testing.T) {
		repo := new(MockAuditRepository)
		handler := NewBeerAuditHandler(repo, zap.NewNop())

		b := auditTestBeer(t)
		var saved *beer.Audit
		repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*beer.Audit)
		}).Return(nil)

		err := handler.Handle(context.Background(), beer.NewPatchedEvent(b, shared.NewPrincipal("alice")))
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, beer.AuditEventTypePatched, saved.AuditEventType)
		require.NotNil(t, saved.PrincipalName)
		assert.Equal(t, "alice", *saved.PrincipalName)
		assert.Equal(t, b.ID, saved.BeerID)
		assert.Equal(t, "Mango Bobs", saved.Name)
	})

	t.Run("unauthenticated create leaves principal unset", func(t *testing.T) {
		repo := new(MockAuditRepository)
		handler := NewBeerAuditHandler(repo, zap.NewNop())

		var saved *beer.Audit
		repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*beer.Audit)
		}).Return(nil)

		err := handler.Handle(context.Background(), beer.NewCreatedEvent(auditTestBeer(t), shared.Anonymous))
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, beer.AuditEventTypeCreated, saved.AuditEventType)
		assert.Nil(t, saved.PrincipalName)
	})

	t.Run("authenticated principal with empty name is not recorded", func(t *testing.T) {
		repo := new(MockAuditRepository)
		handler := NewBeerAuditHandler(repo, zap.NewNop())

		var saved *beer.Audit
		repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*beer.Audit)
		}).Return(nil)

		principal := shared.Principal{Authenticated: true}
		err := handler.Handle(context.Background(), beer.NewDeletedEvent(auditTestBeer(t), principal))
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, beer.AuditEventTypeDeleted, saved.AuditEventType)
		assert.Nil(t, saved.PrincipalName)
	})

	t.Run("each variant maps to its audit type", func(t *testing.T) {
		repo := new(MockAuditRepository)
		handler := NewBeerAuditHandler(repo, zap.NewNop())

		var types []string
		repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			types = append(types, args.Get(1).(*beer.Audit).AuditEventType)
		}).Return(nil)

		b := auditTestBeer(t)
		require.NoError(t, handler.Handle(context.Background(), beer.NewCreatedEvent(b, shared.Anonymous)))
		require.NoError(t, handler.Handle(context.Background(), beer.NewUpdatedEvent(b, shared.Anonymous)))
		require.NoError(t, handler.Handle(context.Background(), beer.NewPatchedEvent(b, shared.Anonymous)))
		require.NoError(t, handler.Handle(context.Background(), beer.NewDeletedEvent(b, shared.Anonymous)))

		assert.Equal(t, []string{
			beer.AuditEventTypeCreated,
			beer.AuditEventTypeUpdated,
			beer.AuditEventTypePatched,
			beer.AuditEventTypeDeleted,
		}, types)
	})

	t.Run("unrecognized variant maps to UNKNOWN", func(t *testing.T) {
		assert.Equal(t, beer.AuditEventTypeUnknown, auditEventType("BeerArchived"))
	})

	t.Run("persistence failure is swallowed", func(t *testing.T) {
		repo := new(MockAuditRepository)
		handler := NewBeerAuditHandler(repo, zap.NewNop())

		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		err := handler.Handle(context.Background(), beer.NewCreatedEvent(auditTestBeer(t), shared.Anonymous))
		assert.NoError(t, err)
	})

	t.Run("non-beer event is ignored", func(t *testing.T) {
		repo := new(MockAuditRepository)
		handler := NewBeerAuditHandler(repo, zap.NewNop())

		generic := shared.NewBaseDomainEvent("SomethingElse", "Other", uuid.New())
		err := handler.Handle(context.Background(), &generic)
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}
