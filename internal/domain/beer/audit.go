package beer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Audit event types written by the audit trail. AuditEventTypeUnknown is the
// fallback for event variants the listener does not recognize.
const (
	AuditEventTypeCreated = "BEER_CREATED"
	AuditEventTypePatched = "BEER_PATCHED"
	AuditEventTypeUpdated = "BEER_UPDATED"
	AuditEventTypeDeleted = "BEER_DELETED"
	AuditEventTypeUnknown = "UNKNOWN"
)

// Audit is an append-only record of a beer state change. Rows are written
// once by the audit listener and never mutated or deleted.
type Audit struct {
	ID             uuid.UUID
	BeerID         uuid.UUID
	Name           string
	Style          Style
	UPC            string
	Price          decimal.Decimal
	QuantityOnHand *int
	AuditEventType string
	PrincipalName  *string
	CreatedAt      time.Time
}

// NewAudit creates an audit row from a beer snapshot. The principal name is
// recorded only when an authenticated identity with a non-empty name
// accompanied the event.
func NewAudit(snapshot Snapshot, auditEventType string, principalName *string) *Audit {
	return &Audit{
		ID:             uuid.New(),
		BeerID:         snapshot.BeerID,
		Name:           snapshot.Name,
		Style:          snapshot.Style,
		UPC:            snapshot.UPC,
		Price:          snapshot.Price,
		QuantityOnHand: snapshot.QuantityOnHand,
		AuditEventType: auditEventType,
		PrincipalName:  principalName,
		CreatedAt:      time.Now(),
	}
}

// AuditRepository defines persistence operations for the beer audit trail
type AuditRepository interface {
	// Save appends one audit row
	Save(ctx context.Context, audit *Audit) error
	// FindByBeerID returns the audit trail for one beer, oldest first
	FindByBeerID(ctx context.Context, beerID uuid.UUID) ([]Audit, error)
	// CountByEventType counts audit rows of the given event type
	CountByEventType(ctx context.Context, auditEventType string) (int64, error)
}
