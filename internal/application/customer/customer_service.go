package customer

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/beerworks/backend/internal/domain/customer"
	"github.com/beerworks/backend/internal/domain/shared"
)

// Service handles customer-related business operations
type Service struct {
	repo   customer.Repository
	events shared.EventPublisher
	logger *zap.Logger
}

// NewService creates a new customer Service
func NewService(repo customer.Repository, events shared.EventPublisher, logger *zap.Logger) *Service {
	return &Service{repo: repo, events: events, logger: logger}
}

// List returns one page of customers matching the query
func (s *Service) List(ctx context.Context, query ListCustomersQuery) (shared.Paginated[CustomerResponse], error) {
	filter := shared.DefaultFilter()
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	if query.OrderBy != "" {
		filter.OrderBy = query.OrderBy
	}
	if query.OrderDir != "" {
		filter.OrderDir = query.OrderDir
	}
	filter.Search = query.Search
	filter = filter.Normalized()

	customers, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}

	items := make([]CustomerResponse, len(customers))
	for i := range customers {
		items[i] = *ToCustomerResponse(&customers[i])
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// Get retrieves a customer by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// Create creates a new customer
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	c, err := customer.NewCustomer(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.publish(ctx, customer.NewCreatedEvent(c))
	return ToCustomerResponse(c), nil
}

// Update replaces a customer's mutable fields
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Update(req.Name, req.Email); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.publish(ctx, customer.NewUpdatedEvent(c))
	return ToCustomerResponse(c), nil
}

// Delete removes a customer, reporting whether it existed
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publish(ctx, customer.NewDeletedEvent(id))
	}
	return deleted, nil
}

// publish emits the write's event; failures never fail the committed write
func (s *Service) publish(ctx context.Context, event shared.DomainEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("customer event publish failed",
			zap.String("event_type", event.EventType()), zap.Error(err))
	}
}
