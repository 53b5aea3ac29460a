package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	orderapp "github.com/beerworks/backend/internal/application/order"
	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/order"
	"github.com/beerworks/backend/internal/domain/shared"
)

// MockOrderRepository is a testify mock of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.BeerOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.BeerOrder), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.BeerOrder, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]order.BeerOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]order.BeerOrder, int64, error) {
	args := m.Called(ctx, customerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]order.BeerOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.BeerOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type orderHandlerFixture struct {
	orders    *MockOrderRepository
	beers     *MockBeerRepository
	customers *MockCustomerRepository
	engine    *gin.Engine
}

func newOrderHandlerFixture(t *testing.T) *orderHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &orderHandlerFixture{
		orders:    new(MockOrderRepository),
		beers:     new(MockBeerRepository),
		customers: new(MockCustomerRepository),
	}
	h := NewOrderHandler(orderapp.NewService(f.orders, f.beers, f.customers, stubPublisher{}, zap.NewNop()))

	f.engine = gin.New()
	api := f.engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return f
}

func TestOrderHandlerCreate(t *testing.T) {
	f := newOrderHandlerFixture(t)
	cust := newTestCustomer(t)
	b := newTestBeer(t, "Galaxy Cat")
	f.customers.On("FindByID", mock.Anything, cust.ID).Return(cust, nil)
	f.beers.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	f.orders.On("Save", mock.Anything, mock.Anything).Return(nil)

	w := doJSON(f.engine, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": cust.ID.String(),
		"lines": []gin.H{
			{"beer_id": b.ID.String(), "quantity": 2},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"NEW"`)
}

func TestOrderHandlerCreateUnknownCustomer(t *testing.T) {
	f := newOrderHandlerFixture(t)
	custID := uuid.New()
	f.customers.On("FindByID", mock.Anything, custID).Return(nil, shared.ErrNotFound)

	w := doJSON(f.engine, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": custID.String(),
		"lines": []gin.H{
			{"beer_id": uuid.NewString(), "quantity": 1},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.orders.AssertNotCalled(t, "Save")
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	f := newOrderHandlerFixture(t)
	o, err := order.NewBeerOrder(uuid.New(), "ref-1")
	require.NoError(t, err)
	b, err := beer.NewBeer("Galaxy Cat", beer.StyleIPA, "063123420003", decimal.NewFromFloat(9.99))
	require.NoError(t, err)
	require.NoError(t, o.AddLine(b, 1))

	f.orders.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	f.orders.On("Save", mock.Anything, mock.Anything).Return(nil)

	w := doJSON(f.engine, http.MethodPut, "/api/v1/orders/"+o.ID.String()+"/status", gin.H{"status": "PAID"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"PAID"`)
}

func TestOrderHandlerUpdateStatusInvalidTransition(t *testing.T) {
	f := newOrderHandlerFixture(t)
	o, err := order.NewBeerOrder(uuid.New(), "")
	require.NoError(t, err)
	f.orders.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	// NEW cannot jump straight to DELIVERED
	w := doJSON(f.engine, http.MethodPut, "/api/v1/orders/"+o.ID.String()+"/status", gin.H{"status": "DELIVERED"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	f.orders.AssertNotCalled(t, "Save")
}

func TestOrderHandlerListByCustomer(t *testing.T) {
	f := newOrderHandlerFixture(t)
	custID := uuid.New()
	o, err := order.NewBeerOrder(custID, "")
	require.NoError(t, err)
	f.orders.On("FindByCustomer", mock.Anything, custID, mock.Anything).Return([]order.BeerOrder{*o}, int64(1), nil)

	w := doJSON(f.engine, http.MethodGet, "/api/v1/orders?customer_id="+custID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	f.orders.AssertNotCalled(t, "FindAll")
}
