package entity

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Product represents an item in the catalog
type Product struct {
	ID         uint           `gorm:"primary_key" json:"id"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	PriceCents int64          `gorm:"column:price;not null" json:"-"` // Stored in cents
	Stock      int            `gorm:"default:0" json:"stock"`
	ImageURL   *string        `gorm:"size:500" json:"image_url,omitempty"`
	Category   *string        `gorm:"size:500" json:"category,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchases []Purchase `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.PriceCents) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.PriceCents = int64(price*100 + 0.5)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.GetPriceDecimal(),
	})
}
