package order

import (
	"time"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the status of a beer order
type Status string

const (
	StatusNew       Status = "NEW"
	StatusPaid      Status = "PAID"
	StatusReady     Status = "READY"
	StatusPickedUp  Status = "PICKED_UP"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the status is a valid order status
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusPaid, StatusReady, StatusPickedUp, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusNew:
		return target == StatusPaid || target == StatusCancelled
	case StatusPaid:
		return target == StatusReady || target == StatusCancelled
	case StatusReady:
		return target == StatusPickedUp || target == StatusCancelled
	case StatusPickedUp:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false // terminal states
	}
	return false
}

// Line represents a line item in a beer order
type Line struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	BeerID        uuid.UUID
	BeerName      string
	BeerStyle     beer.Style
	OrderQuantity int
	UnitPrice     decimal.Decimal
	Amount        decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewLine creates a new order line for the given beer
func NewLine(orderID uuid.UUID, b *beer.Beer, quantity int) (*Line, error) {
	if b == nil || b.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BEER", "Beer cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Order quantity must be positive")
	}

	now := time.Now()
	return &Line{
		ID:            uuid.New(),
		OrderID:       orderID,
		BeerID:        b.ID,
		BeerName:      b.Name,
		BeerStyle:     b.Style,
		OrderQuantity: quantity,
		UnitPrice:     b.Price,
		Amount:        b.Price.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// BeerOrder represents an order of beers placed by a customer.
// It is the aggregate root for order-related operations.
type BeerOrder struct {
	shared.BaseAggregateRoot
	CustomerID    uuid.UUID
	CustomerRef   string
	Status        Status
	PaymentAmount decimal.Decimal
	Lines         []Line
}

// NewBeerOrder creates a new beer order in NEW status
func NewBeerOrder(customerID uuid.UUID, customerRef string) (*BeerOrder, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if len(customerRef) > 50 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_REF", "Customer reference cannot exceed 50 characters")
	}

	return &BeerOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		CustomerRef:       customerRef,
		Status:            StatusNew,
		PaymentAmount:     decimal.Zero,
		Lines:             make([]Line, 0),
	}, nil
}

// AddLine adds a line for the given beer and recalculates the payment amount
func (o *BeerOrder) AddLine(b *beer.Beer, quantity int) error {
	if o.Status != StatusNew {
		return shared.NewDomainError("INVALID_STATE", "Lines can only be added to NEW orders")
	}

	line, err := NewLine(o.ID, b, quantity)
	if err != nil {
		return err
	}

	o.Lines = append(o.Lines, *line)
	o.recalculate()
	o.touch()

	return nil
}

// TransitionTo moves the order to the target status
func (o *BeerOrder) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition order from "+o.Status.String()+" to "+target.String())
	}

	o.Status = target
	o.touch()

	return nil
}

// IsTerminal reports whether the order is in a terminal status
func (o *BeerOrder) IsTerminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}

func (o *BeerOrder) recalculate() {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Amount)
	}
	o.PaymentAmount = total
}

func (o *BeerOrder) touch() {
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
