package repository

import (
	"context"

	"inventory-service/models"
)

// ProductFields holds the mutable columns written by Create and Update.
type ProductFields struct {
	Name          string
	Description   string
	ImageURL      string
	StockQuantity int
	Category      string
}

// ProductRepository defines the persistence operations used by the service
// layer. It uses plain Go types to make swapping implementations easy.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, term string) ([]models.Product, error)
	FindByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, fields ProductFields) (*models.Product, error)
	// Update overwrites the mutable columns for id and returns the number of
	// rows affected. A missing id is not an error.
	Update(ctx context.Context, id int, fields ProductFields) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}
