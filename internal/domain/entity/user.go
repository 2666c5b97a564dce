package entity

import (
	"time"

	"gorm.io/gorm"
)

// Role values assignable to a user.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents an account in the store
type User struct {
	ID        uint           `gorm:"primary_key" json:"id"`
	Username  string         `gorm:"size:50;unique;not null" json:"username"`
	Email     string         `gorm:"size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'customer'" json:"role"`
	FullName  *string        `gorm:"size:100" json:"full_name,omitempty"`
	Bio       *string        `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchases []Purchase `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
