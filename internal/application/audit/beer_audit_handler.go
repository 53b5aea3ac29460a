package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
)

// BeerAuditHandler writes one audit row per beer event. It subscribes to all
// beer event types; unrecognized variants are recorded as UNKNOWN rather than
// rejected. Persistence failures are logged and swallowed: audit loss on a
// transient storage failure is an accepted risk, and the publisher never
// observes listener outcomes.
type BeerAuditHandler struct {
	audits beer.AuditRepository
	logger *zap.Logger
}

// NewBeerAuditHandler creates a new BeerAuditHandler
func NewBeerAuditHandler(audits beer.AuditRepository, logger *zap.Logger) *BeerAuditHandler {
	return &BeerAuditHandler{audits: audits, logger: logger}
}

var _ shared.EventHandler = (*BeerAuditHandler)(nil)

// EventTypes returns the beer event types this handler subscribes to
func (h *BeerAuditHandler) EventTypes() []string {
	return beer.EventTypes()
}

// Handle writes the audit row for one beer event
func (h *BeerAuditHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	beerEvent, ok := event.(beer.Event)
	if !ok {
		h.logger.Warn("audit handler received a non-beer event",
			zap.String("event_type", event.EventType()))
		return nil
	}

	row := beer.NewAudit(
		beerEvent.BeerSnapshot(),
		auditEventType(event.EventType()),
		principalName(beerEvent.ActingPrincipal()),
	)

	if err := h.audits.Save(ctx, row); err != nil {
		h.logger.Error("failed to write beer audit row",
			zap.String("event_type", event.EventType()),
			zap.Stringer("beer_id", row.BeerID),
			zap.Error(err),
		)
	}
	return nil
}

// auditEventType maps an event variant to its audit type literal,
// defaulting unknown variants to UNKNOWN
func auditEventType(eventType string) string {
	switch eventType {
	case beer.EventTypeBeerCreated:
		return beer.AuditEventTypeCreated
	case beer.EventTypeBeerPatched:
		return beer.AuditEventTypePatched
	case beer.EventTypeBeerUpdated:
		return beer.AuditEventTypeUpdated
	case beer.EventTypeBeerDeleted:
		return beer.AuditEventTypeDeleted
	default:
		return beer.AuditEventTypeUnknown
	}
}

// principalName returns the name to record, or nil for unauthenticated or
// nameless principals
func principalName(p shared.Principal) *string {
	if !p.HasName() {
		return nil
	}
	name := p.Name
	return &name
}
