package beer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/beerworks/backend/internal/domain/beer"
	"github.com/beerworks/backend/internal/domain/shared"
)

const (
	defaultPageSize = shared.DefaultPageSize
	maxPageSize     = shared.MaxPageSize
)

// CreateBeerRequest represents a request to create a new beer
type CreateBeerRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=50"`
	Style          beer.Style      `json:"style" binding:"required,oneof=LAGER PILSNER STOUT GOSE PORTER ALE WHEAT IPA PALE_ALE SAISON"`
	UPC            string          `json:"upc" binding:"required,max=255"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	QuantityOnHand *int            `json:"quantity_on_hand" binding:"omitempty,min=0"`
}

// UpdateBeerRequest represents a full replacement of a beer's mutable fields
type UpdateBeerRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=50"`
	Style          beer.Style      `json:"style" binding:"required,oneof=LAGER PILSNER STOUT GOSE PORTER ALE WHEAT IPA PALE_ALE SAISON"`
	UPC            string          `json:"upc" binding:"required,max=255"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	QuantityOnHand *int            `json:"quantity_on_hand" binding:"omitempty,min=0"`
}

// PatchBeerRequest represents a partial update: only non-nil fields are applied
type PatchBeerRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1,max=50"`
	Style          *beer.Style      `json:"style" binding:"omitempty,oneof=LAGER PILSNER STOUT GOSE PORTER ALE WHEAT IPA PALE_ALE SAISON"`
	UPC            *string          `json:"upc" binding:"omitempty,max=255"`
	Price          *decimal.Decimal `json:"price"`
	QuantityOnHand *int             `json:"quantity_on_hand" binding:"omitempty,min=0"`
}

// ListBeersQuery represents filter and paging options for the beer list
type ListBeersQuery struct {
	Name          string `form:"name"`
	Style         string `form:"style" binding:"omitempty,oneof=LAGER PILSNER STOUT GOSE PORTER ALE WHEAT IPA PALE_ALE SAISON"`
	ShowInventory bool   `form:"show_inventory"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1"`
}

// Normalized returns a copy with paging defaults applied and the page size capped
func (q ListBeersQuery) Normalized() ListBeersQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

// CacheKey returns the list cache key covering the full query shape
func (q ListBeersQuery) CacheKey() string {
	return fmt.Sprintf("list:%s|%s|%t|%d|%d",
		strings.ToLower(q.Name), q.Style, q.ShowInventory, q.Page, q.PageSize)
}

// toListFilter converts the query to the domain list filter
func (q ListBeersQuery) toListFilter() beer.ListFilter {
	filter := beer.ListFilter{
		Name:     q.Name,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Style != "" {
		style := beer.Style(q.Style)
		filter.Style = &style
	}
	return filter
}

// BeerResponse represents a beer in API responses
type BeerResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Style          beer.Style      `json:"style"`
	UPC            string          `json:"upc"`
	Price          decimal.Decimal `json:"price"`
	QuantityOnHand *int            `json:"quantity_on_hand,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// ToBeerResponse converts a domain Beer to a BeerResponse. When showInventory
// is false the quantity on hand is withheld from the response.
func ToBeerResponse(b *beer.Beer, showInventory bool) *BeerResponse {
	resp := &BeerResponse{
		ID:        b.ID,
		Name:      b.Name,
		Style:     b.Style,
		UPC:       b.UPC,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Version:   b.Version,
	}
	if showInventory {
		resp.QuantityOnHand = b.QuantityOnHand
	}
	return resp
}
