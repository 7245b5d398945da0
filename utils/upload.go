package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"event-management-backend/config"
)

// SaveUploadedPhoto stores one uploaded photo under config.UploadPath and
// returns the generated filename kept as the participant's photo reference.
func SaveUploadedPhoto(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(config.UploadPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + filepath.Ext(filepath.Base(file.Filename))
	dst := filepath.Join(config.UploadPath, filename)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return filename, nil
}
