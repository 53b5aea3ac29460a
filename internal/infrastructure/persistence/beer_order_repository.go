package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/beerworks/backend/internal/domain/order"
	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/persistence/models"
)

// GormBeerOrderRepository implements order.Repository using GORM
type GormBeerOrderRepository struct {
	db *gorm.DB
}

// NewGormBeerOrderRepository creates a new GormBeerOrderRepository
func NewGormBeerOrderRepository(db *gorm.DB) *GormBeerOrderRepository {
	return &GormBeerOrderRepository{db: db}
}

// FindByID finds an order with its lines
func (r *GormBeerOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.BeerOrder, error) {
	var model models.BeerOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds one page of orders matching the filter plus the total count
func (r *GormBeerOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.BeerOrder, int64, error) {
	return r.findPage(ctx, r.db.WithContext(ctx).Model(&models.BeerOrderModel{}), filter)
}

// FindByCustomer finds one page of a customer's orders
func (r *GormBeerOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]order.BeerOrder, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BeerOrderModel{}).
		Where("customer_id = ?", customerID)
	return r.findPage(ctx, query, filter)
}

func (r *GormBeerOrderRepository) findPage(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]order.BeerOrder, int64, error) {
	if filter.Search != "" {
		query = query.Where("status = ?", filter.Search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, BeerOrderSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var orderModels []models.BeerOrderModel
	if err := query.
		Preload("Lines").
		Order(fmt.Sprintf("%s %s", orderBy, orderDir)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]order.BeerOrder, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, total, nil
}

// Save inserts or updates an order together with its lines
func (r *GormBeerOrderRepository) Save(ctx context.Context, o *order.BeerOrder) error {
	var model models.BeerOrderModel
	model.FromDomain(o)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Save(&model).Error; err != nil {
			return err
		}
		// Replace lines wholesale, the aggregate owns them
		if err := tx.Delete(&models.BeerOrderLineModel{}, "order_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(model.Lines) > 0 {
			if err := tx.Create(&model.Lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByID removes an order and its lines, reporting whether it existed
func (r *GormBeerOrderRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.BeerOrderLineModel{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.BeerOrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
