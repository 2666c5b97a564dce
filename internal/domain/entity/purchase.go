package entity

import (
	"encoding/json"
	"time"

	"github.com/dcastano/ventas-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Purchase represents a checkout record for one product.
// Purchases are immutable once created; only their status advances.
type Purchase struct {
	ID          uint                `gorm:"primary_key" json:"id"`
	UserID      uint                `gorm:"not null;index" json:"user_id"`
	ProductID   uint                `gorm:"not null;index" json:"product_id"`
	Quantity    int                 `gorm:"not null" json:"quantity"`
	TotalCents  *int64              `gorm:"column:total" json:"-"` // Stored in cents, nullable in legacy data
	Status      enum.PurchaseStatus `gorm:"default:0" json:"status"`
	PurchasedAt time.Time           `gorm:"not null;index" json:"purchased_at"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// GetTotalCents returns the total in cents, treating a missing total as zero
func (p *Purchase) GetTotalCents() int64 {
	if p.TotalCents == nil {
		return 0
	}
	return *p.TotalCents
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Purchase) MarshalJSON() ([]byte, error) {
	type Alias Purchase
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(p),
		Total: float64(p.GetTotalCents()) / 100,
	})
}
