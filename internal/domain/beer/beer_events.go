package beer

import (
	"time"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeBeer = "Beer"

// Event type constants
const (
	EventTypeBeerCreated = "BeerCreated"
	EventTypeBeerUpdated = "BeerUpdated"
	EventTypeBeerPatched = "BeerPatched"
	EventTypeBeerDeleted = "BeerDeleted"
)

// Snapshot is an immutable copy of a beer's state at the time an event
// occurred. Events carry snapshots, never live aggregates.
type Snapshot struct {
	BeerID         uuid.UUID       `json:"beer_id"`
	Name           string          `json:"name"`
	Style          Style           `json:"style"`
	UPC            string          `json:"upc"`
	Price          decimal.Decimal `json:"price"`
	QuantityOnHand *int            `json:"quantity_on_hand,omitempty"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SnapshotOf captures the current state of a beer
func SnapshotOf(b *Beer) Snapshot {
	var qty *int
	if b.QuantityOnHand != nil {
		q := *b.QuantityOnHand
		qty = &q
	}
	return Snapshot{
		BeerID:         b.ID,
		Name:           b.Name,
		Style:          b.Style,
		UPC:            b.UPC,
		Price:          b.Price,
		QuantityOnHand: qty,
		Version:        b.Version,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// Event is the capability shared by all beer events: every variant carries a
// beer snapshot and the principal acting when the change was committed.
type Event interface {
	shared.DomainEvent
	BeerSnapshot() Snapshot
	ActingPrincipal() shared.Principal
}

type baseBeerEvent struct {
	shared.BaseDomainEvent
	Beer      Snapshot         `json:"beer"`
	Principal shared.Principal `json:"-"`
}

// BeerSnapshot returns the beer state carried by the event
func (e *baseBeerEvent) BeerSnapshot() Snapshot {
	return e.Beer
}

// ActingPrincipal returns the caller identity attached to the event
func (e *baseBeerEvent) ActingPrincipal() shared.Principal {
	return e.Principal
}

func newBaseBeerEvent(eventType string, b *Beer, principal shared.Principal) baseBeerEvent {
	return baseBeerEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeBeer, b.ID),
		Beer:            SnapshotOf(b),
		Principal:       principal,
	}
}

// CreatedEvent is published when a new beer is persisted
type CreatedEvent struct {
	baseBeerEvent
}

// NewCreatedEvent creates a new CreatedEvent
func NewCreatedEvent(b *Beer, principal shared.Principal) *CreatedEvent {
	return &CreatedEvent{newBaseBeerEvent(EventTypeBeerCreated, b, principal)}
}

// UpdatedEvent is published when a beer is fully replaced
type UpdatedEvent struct {
	baseBeerEvent
}

// NewUpdatedEvent creates a new UpdatedEvent
func NewUpdatedEvent(b *Beer, principal shared.Principal) *UpdatedEvent {
	return &UpdatedEvent{newBaseBeerEvent(EventTypeBeerUpdated, b, principal)}
}

// PatchedEvent is published when a beer is partially updated
type PatchedEvent struct {
	baseBeerEvent
}

// NewPatchedEvent creates a new PatchedEvent
func NewPatchedEvent(b *Beer, principal shared.Principal) *PatchedEvent {
	return &PatchedEvent{newBaseBeerEvent(EventTypeBeerPatched, b, principal)}
}

// DeletedEvent is published when a beer is removed
type DeletedEvent struct {
	baseBeerEvent
}

// NewDeletedEvent creates a new DeletedEvent
func NewDeletedEvent(b *Beer, principal shared.Principal) *DeletedEvent {
	return &DeletedEvent{newBaseBeerEvent(EventTypeBeerDeleted, b, principal)}
}

// EventTypes returns all beer event types
func EventTypes() []string {
	return []string{
		EventTypeBeerCreated,
		EventTypeBeerUpdated,
		EventTypeBeerPatched,
		EventTypeBeerDeleted,
	}
}
