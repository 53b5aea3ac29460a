package beer

import (
	"time"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Beer represents a beer in the catalog.
// It is the aggregate root for beer-related operations.
type Beer struct {
	shared.BaseAggregateRoot
	Name           string
	Style          Style
	UPC            string
	Price          decimal.Decimal
	QuantityOnHand *int
}

// NewBeer creates a new beer
func NewBeer(name string, style Style, upc string, price decimal.Decimal) (*Beer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !style.IsValid() {
		return nil, shared.NewDomainError("INVALID_STYLE", "Unknown beer style")
	}
	if err := validateUPC(upc); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Beer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Style:             style,
		UPC:               upc,
		Price:             price,
	}, nil
}

// Update replaces the beer's mutable fields
func (b *Beer) Update(name string, style Style, upc string, price decimal.Decimal) error {
	if err := validateName(name); err != nil {
		return err
	}
	if !style.IsValid() {
		return shared.NewDomainError("INVALID_STYLE", "Unknown beer style")
	}
	if err := validateUPC(upc); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	b.Name = name
	b.Style = style
	b.UPC = upc
	b.Price = price
	b.touch()

	return nil
}

// SetQuantityOnHand sets the available inventory count
func (b *Beer) SetQuantityOnHand(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity on hand cannot be negative")
	}
	qty := quantity
	b.QuantityOnHand = &qty
	b.touch()
	return nil
}

// Rename changes only the beer's name
func (b *Beer) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	b.Name = name
	b.touch()
	return nil
}

// ChangeStyle changes only the beer's style
func (b *Beer) ChangeStyle(style Style) error {
	if !style.IsValid() {
		return shared.NewDomainError("INVALID_STYLE", "Unknown beer style")
	}
	b.Style = style
	b.touch()
	return nil
}

// ChangeUPC changes only the beer's UPC
func (b *Beer) ChangeUPC(upc string) error {
	if err := validateUPC(upc); err != nil {
		return err
	}
	b.UPC = upc
	b.touch()
	return nil
}

// ChangePrice changes only the beer's price
func (b *Beer) ChangePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	b.Price = price
	b.touch()
	return nil
}

func (b *Beer) touch() {
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Beer name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Beer name cannot exceed 100 characters")
	}
	return nil
}

func validateUPC(upc string) error {
	if upc == "" {
		return shared.NewDomainError("INVALID_UPC", "UPC cannot be empty")
	}
	if len(upc) > 20 {
		return shared.NewDomainError("INVALID_UPC", "UPC cannot exceed 20 characters")
	}
	return nil
}
