package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/order"
)

// CreateOrderLineRequest represents one requested line in a new order
type CreateOrderLineRequest struct {
	BeerID   uuid.UUID `json:"beer_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents a request to place a new beer order
type CreateOrderRequest struct {
	CustomerID  uuid.UUID                `json:"customer_id" binding:"required"`
	CustomerRef string                   `json:"customer_ref" binding:"max=50"`
	Lines       []CreateOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents a status transition request
type UpdateOrderStatusRequest struct {
	Status order.Status `json:"status" binding:"required,oneof=NEW PAID READY PICKED_UP DELIVERED CANCELLED"`
}

// ListOrdersQuery represents filter and paging options for the order list
type ListOrdersQuery struct {
	CustomerID *uuid.UUID `form:"customer_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=NEW PAID READY PICKED_UP DELIVERED CANCELLED"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// OrderLineResponse represents an order line in API responses
type OrderLineResponse struct {
	ID            uuid.UUID       `json:"id"`
	BeerID        uuid.UUID       `json:"beer_id"`
	BeerName      string          `json:"beer_name"`
	BeerStyle     beer.Style      `json:"beer_style"`
	OrderQuantity int             `json:"order_quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Amount        decimal.Decimal `json:"amount"`
}

// OrderResponse represents a beer order in API responses
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    uuid.UUID           `json:"customer_id"`
	CustomerRef   string              `json:"customer_ref,omitempty"`
	Status        order.Status        `json:"status"`
	PaymentAmount decimal.Decimal     `json:"payment_amount"`
	Lines         []OrderLineResponse `json:"lines"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Version       int                 `json:"version"`
}

// ToOrderResponse converts a domain BeerOrder to an OrderResponse
func ToOrderResponse(o *order.BeerOrder) *OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			ID:            l.ID,
			BeerID:        l.BeerID,
			BeerName:      l.BeerName,
			BeerStyle:     l.BeerStyle,
			OrderQuantity: l.OrderQuantity,
			UnitPrice:     l.UnitPrice,
			Amount:        l.Amount,
		}
	}
	return &OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerRef:   o.CustomerRef,
		Status:        o.Status,
		PaymentAmount: o.PaymentAmount,
		Lines:         lines,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Version:       o.Version,
	}
}
