package customer

import (
	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCustomer = "Customer"

// Event type constants
const (
	EventTypeCustomerCreated = "CustomerCreated"
	EventTypeCustomerUpdated = "CustomerUpdated"
	EventTypeCustomerDeleted = "CustomerDeleted"
)

type baseCustomerEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
}

func newBaseCustomerEvent(eventType string, c *Customer) baseCustomerEvent {
	return baseCustomerEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeCustomer, c.ID),
		CustomerID:      c.ID,
		Name:            c.Name,
		Email:           c.Email,
	}
}

// CreatedEvent is published when a new customer is persisted
type CreatedEvent struct {
	baseCustomerEvent
}

// NewCreatedEvent creates a new CreatedEvent
func NewCreatedEvent(c *Customer) *CreatedEvent {
	return &CreatedEvent{newBaseCustomerEvent(EventTypeCustomerCreated, c)}
}

// UpdatedEvent is published when a customer's details change
type UpdatedEvent struct {
	baseCustomerEvent
}

// NewUpdatedEvent creates a new UpdatedEvent
func NewUpdatedEvent(c *Customer) *UpdatedEvent {
	return &UpdatedEvent{newBaseCustomerEvent(EventTypeCustomerUpdated, c)}
}

// DeletedEvent is published when a customer is removed
type DeletedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewDeletedEvent creates a new DeletedEvent
func NewDeletedEvent(id uuid.UUID) *DeletedEvent {
	return &DeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerDeleted, AggregateTypeCustomer, id),
		CustomerID:      id,
	}
}
