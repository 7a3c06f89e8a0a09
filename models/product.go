package models

import "time"

// Product corresponds to the 'products' table. Name carries a unique index;
// the constraint is what actually guards against concurrent duplicate creates.
type Product struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	ImageURL      string    `gorm:"size:500" json:"image_url"`
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`
	Category      string    `gorm:"size:100" json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
