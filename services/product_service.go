package services

import (
	"context"

	"inventory-service/models"
	"inventory-service/repository"
)

// ProductService is the interface the controllers depend on.
type ProductService interface {
	List(ctx context.Context, searchTerm string) ([]models.Product, error)
	Get(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, fields repository.ProductFields) (*models.Product, error)
	Update(ctx context.Context, id int, fields repository.ProductFields) error
	Delete(ctx context.Context, id int) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService wires a ProductService over the given repository.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// List returns the full inventory ordered newest-first, or the matching
// subset when searchTerm is non-empty. Empty terms never reach Search.
func (s *productService) List(ctx context.Context, searchTerm string) ([]models.Product, error) {
	if searchTerm == "" {
		return s.repo.ListAll(ctx)
	}
	return s.repo.Search(ctx, searchTerm)
}

func (s *productService) Get(ctx context.Context, id int) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, fields repository.ProductFields) (*models.Product, error) {
	return s.repo.Create(ctx, fields)
}

// Update overwrites the mutable fields for id. A missing id is a silent
// no-op, mirroring the storage semantics.
func (s *productService) Update(ctx context.Context, id int, fields repository.ProductFields) error {
	_, err := s.repo.Update(ctx, id, fields)
	return err
}

func (s *productService) Delete(ctx context.Context, id int) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
