package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/persistence/models"
)

// GormBeerRepository implements beer.Repository using GORM
type GormBeerRepository struct {
	db *gorm.DB
}

// NewGormBeerRepository creates a new GormBeerRepository
func NewGormBeerRepository(db *gorm.DB) *GormBeerRepository {
	return &GormBeerRepository{db: db}
}

// FindByID finds a beer by its ID
func (r *GormBeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*beer.Beer, error) {
	var model models.BeerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds one page of beers matching the filter plus the total count
func (r *GormBeerRepository) FindAll(ctx context.Context, filter beer.ListFilter) ([]beer.Beer, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BeerModel{})

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Style != nil {
		query = query.Where("style = ?", *filter.Style)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 25
	}

	var beerModels []models.BeerModel
	if err := query.
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&beerModels).Error; err != nil {
		return nil, 0, err
	}

	beers := make([]beer.Beer, len(beerModels))
	for i, model := range beerModels {
		beers[i] = *model.ToDomain()
	}
	return beers, total, nil
}

// Save inserts or updates a beer
func (r *GormBeerRepository) Save(ctx context.Context, b *beer.Beer) error {
	var model models.BeerModel
	model.FromDomain(b)
	return r.db.WithContext(ctx).Save(&model).Error
}

// SaveBatch inserts a batch of beers in a single transaction
func (r *GormBeerRepository) SaveBatch(ctx context.Context, beers []*beer.Beer) error {
	if len(beers) == 0 {
		return nil
	}

	beerModels := make([]models.BeerModel, len(beers))
	for i, b := range beers {
		beerModels[i].FromDomain(b)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&beerModels, len(beerModels)).Error; err != nil {
			return fmt.Errorf("failed to save beer batch: %w", err)
		}
		return nil
	})
}

// DeleteByID removes a beer, reporting whether it existed
func (r *GormBeerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.BeerModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ExistsByUPC reports whether a beer with the given UPC exists
func (r *GormBeerRepository) ExistsByUPC(ctx context.Context, upc string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BeerModel{}).
		Where("upc = ?", upc).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
