package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inventory-service/models"
	"inventory-service/repository"
	"inventory-service/services"
)

type ProductController struct {
	service services.ProductService
}

func NewProductController(service services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// GetProducts returns the full product list, or the matching subset when the
// search query parameter is present.
func (pc *ProductController) GetProducts(c *gin.Context) {
	search := c.Query("search")

	products, err := pc.service.List(c.Request.Context(), search)
	if err != nil {
		zap.L().Error("Error fetching products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID returns a single product by its integer id.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := pc.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		zap.L().Error("Error fetching product", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct validates the request body and inserts a new product.
// Duplicate names map to 409.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Invalid create product request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	product, err := pc.service.Create(c.Request.Context(), repository.ProductFields{
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		StockQuantity: *req.StockQuantity,
		Category:      req.Category,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product with this name already exists"})
			return
		}
		zap.L().Error("Error creating product", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	zap.L().Info("Product created", zap.Int("id", product.ID), zap.String("name", product.Name))
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct overwrites the mutable fields of the product at id. A missing
// id is a no-op that still reports success.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Invalid update product request", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err = pc.service.Update(c.Request.Context(), id, repository.ProductFields{
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		StockQuantity: *req.StockQuantity,
		Category:      req.Category,
	})
	if err != nil {
		zap.L().Error("Error updating product", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct removes the product at id. A missing id still reports success.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := pc.service.Delete(c.Request.Context(), id); err != nil {
		zap.L().Error("Error deleting product", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
