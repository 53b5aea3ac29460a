package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/beerworks/backend/internal/domain/beer"
)

// BeerModel is the persistence model for the Beer aggregate.
type BeerModel struct {
	AggregateModel
	Name           string          `gorm:"type:varchar(50);not null;index"`
	Style          beer.Style      `gorm:"type:varchar(20);not null;index"`
	UPC            string          `gorm:"column:upc;type:varchar(255);not null;uniqueIndex"`
	Price          decimal.Decimal `gorm:"type:decimal(38,2);not null"`
	QuantityOnHand *int            `gorm:"column:quantity_on_hand"`
}

// TableName returns the table name for GORM
func (BeerModel) TableName() string {
	return "beers"
}

// ToDomain converts the persistence model to a domain Beer aggregate.
func (m *BeerModel) ToDomain() *beer.Beer {
	return &beer.Beer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Style:             m.Style,
		UPC:               m.UPC,
		Price:             m.Price,
		QuantityOnHand:    m.QuantityOnHand,
	}
}

// FromDomain populates the persistence model from a domain Beer aggregate.
func (m *BeerModel) FromDomain(b *beer.Beer) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.Name = b.Name
	m.Style = b.Style
	m.UPC = b.UPC
	m.Price = b.Price
	m.QuantityOnHand = b.QuantityOnHand
}

// BeerAuditModel is the persistence model for beer audit rows.
type BeerAuditModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	BeerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(50);not null"`
	Style          beer.Style      `gorm:"type:varchar(20);not null"`
	UPC            string          `gorm:"column:upc;type:varchar(255);not null"`
	Price          decimal.Decimal `gorm:"type:decimal(38,2);not null"`
	QuantityOnHand *int            `gorm:"column:quantity_on_hand"`
	AuditEventType string          `gorm:"type:varchar(20);not null;index"`
	PrincipalName  *string         `gorm:"type:varchar(255)"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BeerAuditModel) TableName() string {
	return "beer_audits"
}

// ToDomain converts the persistence model to a domain Audit row.
func (m *BeerAuditModel) ToDomain() *beer.Audit {
	return &beer.Audit{
		ID:             m.ID,
		BeerID:         m.BeerID,
		Name:           m.Name,
		Style:          m.Style,
		UPC:            m.UPC,
		Price:          m.Price,
		QuantityOnHand: m.QuantityOnHand,
		AuditEventType: m.AuditEventType,
		PrincipalName:  m.PrincipalName,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Audit row.
func (m *BeerAuditModel) FromDomain(a *beer.Audit) {
	m.ID = a.ID
	m.BeerID = a.BeerID
	m.Name = a.Name
	m.Style = a.Style
	m.UPC = a.UPC
	m.Price = a.Price
	m.QuantityOnHand = a.QuantityOnHand
	m.AuditEventType = a.AuditEventType
	m.PrincipalName = a.PrincipalName
	m.CreatedAt = a.CreatedAt
}
