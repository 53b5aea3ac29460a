package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/customer"
	"github.com/beerworks/backend/internal/domain/order"
	"github.com/beerworks/backend/internal/domain/shared"
)

// Service handles beer order business operations
type Service struct {
	orders    order.Repository
	beers     beer.Repository
	customers customer.Repository
	events    shared.EventPublisher
	logger    *zap.Logger
}

// NewService creates a new order Service
func NewService(orders order.Repository, beers beer.Repository, customers customer.Repository, events shared.EventPublisher, logger *zap.Logger) *Service {
	return &Service{orders: orders, beers: beers, customers: customers, events: events, logger: logger}
}

// List returns one page of orders, optionally scoped to a customer or status
func (s *Service) List(ctx context.Context, query ListOrdersQuery) (shared.Paginated[OrderResponse], error) {
	filter := shared.DefaultFilter()
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	filter.Search = query.Status
	filter = filter.Normalized()

	var (
		orders []order.BeerOrder
		total  int64
		err    error
	)
	if query.CustomerID != nil {
		orders, total, err = s.orders.FindByCustomer(ctx, *query.CustomerID, filter)
	} else {
		orders, total, err = s.orders.FindAll(ctx, filter)
	}
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}

	items := make([]OrderResponse, len(orders))
	for i := range orders {
		items[i] = *ToOrderResponse(&orders[i])
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// Get retrieves an order by ID with its lines
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// Create places a new order for an existing customer, resolving each
// requested beer to capture its name and price at order time
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer not found")
		}
		return nil, err
	}

	o, err := order.NewBeerOrder(req.CustomerID, req.CustomerRef)
	if err != nil {
		return nil, err
	}

	for _, line := range req.Lines {
		b, err := s.beers.FindByID(ctx, line.BeerID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_BEER", "Beer not found")
			}
			return nil, err
		}
		if err := o.AddLine(b, line.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	s.publish(ctx, order.NewCreatedEvent(o))
	return ToOrderResponse(o), nil
}

// UpdateStatus transitions an order to the requested status
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := o.Status
	if err := o.TransitionTo(req.Status); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	s.publish(ctx, order.NewStatusChangedEvent(o, previous))
	return ToOrderResponse(o), nil
}

// Delete removes an order, reporting whether it existed
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.orders.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publish(ctx, order.NewDeletedEvent(id))
	}
	return deleted, nil
}

// publish emits the write's event; failures never fail the committed write
func (s *Service) publish(ctx context.Context, event shared.DomainEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("order event publish failed",
			zap.String("event_type", event.EventType()), zap.Error(err))
	}
}
