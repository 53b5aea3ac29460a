package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/infrastructure/persistence/models"
)

// GormBeerAuditRepository implements beer.AuditRepository using GORM
type GormBeerAuditRepository struct {
	db *gorm.DB
}

// NewGormBeerAuditRepository creates a new GormBeerAuditRepository
func NewGormBeerAuditRepository(db *gorm.DB) *GormBeerAuditRepository {
	return &GormBeerAuditRepository{db: db}
}

// Save appends one audit row
func (r *GormBeerAuditRepository) Save(ctx context.Context, audit *beer.Audit) error {
	var model models.BeerAuditModel
	model.FromDomain(audit)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByBeerID returns the audit trail for one beer, oldest first
func (r *GormBeerAuditRepository) FindByBeerID(ctx context.Context, beerID uuid.UUID) ([]beer.Audit, error) {
	var auditModels []models.BeerAuditModel
	if err := r.db.WithContext(ctx).
		Where("beer_id = ?", beerID).
		Order("created_at ASC").
		Find(&auditModels).Error; err != nil {
		return nil, err
	}

	audits := make([]beer.Audit, len(auditModels))
	for i, model := range auditModels {
		audits[i] = *model.ToDomain()
	}
	return audits, nil
}

// CountByEventType counts audit rows of the given event type
func (r *GormBeerAuditRepository) CountByEventType(ctx context.Context, auditEventType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BeerAuditModel{}).
		Where("audit_event_type = ?", auditEventType).
		Count(&count).Error
	return count, err
}
