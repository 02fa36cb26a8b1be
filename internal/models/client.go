package models

import (
	"time"

	"gorm.io/datatypes"
)

// Client stores a contact form submission from the landing page.
type Client struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	FullName    string            `gorm:"size:100;not null;index" json:"full_name"`
	Email       string            `gorm:"size:255;not null;index" json:"email"`
	Phone       string            `gorm:"size:20;not null" json:"phone"`
	Company     string            `gorm:"size:255" json:"company,omitempty"`
	ProductType string            `gorm:"size:100" json:"product_type,omitempty"`
	Quantity    *int              `json:"quantity,omitempty"`
	Message     string            `gorm:"type:text;not null" json:"message"`
	Metadata    datatypes.JSONMap `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
