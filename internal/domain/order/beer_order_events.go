package order

import (
	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeBeerOrder = "BeerOrder"

// Event type constants
const (
	EventTypeOrderCreated       = "BeerOrderCreated"
	EventTypeOrderStatusChanged = "BeerOrderStatusChanged"
	EventTypeOrderDeleted       = "BeerOrderDeleted"
)

// CreatedEvent is published when a new order is persisted
type CreatedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID       `json:"order_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Status        Status          `json:"status"`
	LineCount     int             `json:"line_count"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

// NewCreatedEvent creates a new CreatedEvent
func NewCreatedEvent(o *BeerOrder) *CreatedEvent {
	return &CreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeBeerOrder, o.ID),
		OrderID:         o.ID,
		CustomerID:      o.CustomerID,
		Status:          o.Status,
		LineCount:       len(o.Lines),
		PaymentAmount:   o.PaymentAmount,
	}
}

// StatusChangedEvent is published when an order transitions to a new status
type StatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID        uuid.UUID `json:"order_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	PreviousStatus Status    `json:"previous_status"`
	Status         Status    `json:"status"`
}

// NewStatusChangedEvent creates a new StatusChangedEvent
func NewStatusChangedEvent(o *BeerOrder, previous Status) *StatusChangedEvent {
	return &StatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeBeerOrder, o.ID),
		OrderID:         o.ID,
		CustomerID:      o.CustomerID,
		PreviousStatus:  previous,
		Status:          o.Status,
	}
}

// DeletedEvent is published when an order is removed
type DeletedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID `json:"order_id"`
}

// NewDeletedEvent creates a new DeletedEvent
func NewDeletedEvent(id uuid.UUID) *DeletedEvent {
	return &DeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderDeleted, AggregateTypeBeerOrder, id),
		OrderID:         id,
	}
}
