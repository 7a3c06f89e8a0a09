package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"inventory-service/models"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a gorm-backed ProductRepository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Search(ctx context.Context, term string) ([]models.Product, error) {
	// LOWER(...) LIKE keeps the match case-insensitive on Postgres, where
	// plain LIKE is not.
	pattern := "%" + strings.ToLower(term) + "%"

	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			pattern, pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, fields ProductFields) (*models.Product, error) {
	// Fast-path check for a friendly error. The unique index on name is the
	// authoritative guard; two concurrent creates can both pass this check
	// but only one insert survives the constraint.
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("name = ?", fields.Name).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	product := models.Product{
		Name:          fields.Name,
		Description:   fields.Description,
		ImageURL:      fields.ImageURL,
		StockQuantity: fields.StockQuantity,
		Category:      fields.Category,
	}
	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id int, fields ProductFields) (int64, error) {
	// Map form so zero values (e.g. stock_quantity 0) are written; gorm
	// refreshes updated_at on its own.
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":           fields.Name,
			"description":    fields.Description,
			"image_url":      fields.ImageURL,
			"stock_quantity": fields.StockQuantity,
			"category":       fields.Category,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *productRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
