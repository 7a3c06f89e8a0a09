package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inventory-service/controllers"
	"inventory-service/middleware"
)

// RegisterRoutes wires all HTTP endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, pc *controllers.ProductController, uc *controllers.UploadController, jwtSecret string) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("", pc.GetProducts)
		productRoutes.GET("/:id", pc.GetProductByID)
		productRoutes.POST("", pc.CreateProduct)
		productRoutes.PUT("/:id", pc.UpdateProduct)
		productRoutes.DELETE("/:id", pc.DeleteProduct)
	}

	r.POST("/upload-image", middleware.RequireAuth(jwtSecret), uc.UploadImage)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "inventory-api",
		})
	})
}
