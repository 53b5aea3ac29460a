package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/order"
)

// BeerOrderModel is the persistence model for the BeerOrder aggregate.
type BeerOrderModel struct {
	AggregateModel
	CustomerID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	CustomerRef   string               `gorm:"type:varchar(50)"`
	Status        order.Status         `gorm:"type:varchar(20);not null;index"`
	PaymentAmount decimal.Decimal      `gorm:"type:decimal(38,2);not null;default:0"`
	Lines         []BeerOrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (BeerOrderModel) TableName() string {
	return "beer_orders"
}

// BeerOrderLineModel is the persistence model for a beer order line.
type BeerOrderLineModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	BeerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	BeerName      string          `gorm:"type:varchar(50);not null"`
	BeerStyle     beer.Style      `gorm:"type:varchar(20);not null"`
	OrderQuantity int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(38,2);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(38,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BeerOrderLineModel) TableName() string {
	return "beer_order_lines"
}

// ToDomain converts the persistence model to a domain BeerOrder aggregate.
func (m *BeerOrderModel) ToDomain() *order.BeerOrder {
	lines := make([]order.Line, len(m.Lines))
	for i, lm := range m.Lines {
		lines[i] = order.Line{
			ID:            lm.ID,
			OrderID:       lm.OrderID,
			BeerID:        lm.BeerID,
			BeerName:      lm.BeerName,
			BeerStyle:     lm.BeerStyle,
			OrderQuantity: lm.OrderQuantity,
			UnitPrice:     lm.UnitPrice,
			Amount:        lm.Amount,
			CreatedAt:     lm.CreatedAt,
			UpdatedAt:     lm.UpdatedAt,
		}
	}

	return &order.BeerOrder{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		CustomerRef:       m.CustomerRef,
		Status:            m.Status,
		PaymentAmount:     m.PaymentAmount,
		Lines:             lines,
	}
}

// FromDomain populates the persistence model from a domain BeerOrder aggregate.
func (m *BeerOrderModel) FromDomain(o *order.BeerOrder) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.CustomerID = o.CustomerID
	m.CustomerRef = o.CustomerRef
	m.Status = o.Status
	m.PaymentAmount = o.PaymentAmount

	m.Lines = make([]BeerOrderLineModel, len(o.Lines))
	for i, l := range o.Lines {
		m.Lines[i] = BeerOrderLineModel{
			ID:            l.ID,
			OrderID:       l.OrderID,
			BeerID:        l.BeerID,
			BeerName:      l.BeerName,
			BeerStyle:     l.BeerStyle,
			OrderQuantity: l.OrderQuantity,
			UnitPrice:     l.UnitPrice,
			Amount:        l.Amount,
			CreatedAt:     l.CreatedAt,
			UpdatedAt:     l.UpdatedAt,
		}
	}
}
