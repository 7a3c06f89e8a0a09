package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inventory-service/services"
)

type UploadController struct {
	service services.UploadService
}

func NewUploadController(service services.UploadService) *UploadController {
	return &UploadController{service: service}
}

// UploadImage stores the multipart "file" field in object storage and returns
// its public URL. Auth is enforced by middleware before this handler runs.
func (uc *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		zap.L().Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	defer file.Close()

	url, err := uc.service.UploadImage(c.Request.Context(), file, fileHeader)
	if err != nil {
		if errors.Is(err, services.ErrNotImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
			return
		}
		zap.L().Error("Image upload failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
