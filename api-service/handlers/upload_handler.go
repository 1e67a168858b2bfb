package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"marigold-backend/shared/config"

	"marigold-backend/api-service/services"
)

var storageService services.StorageService

// InitStorage wires the configured storage driver. Upload routes answer
// with an error until a driver is configured.
func InitStorage() error {
	svc, err := services.NewStorageService(config.GetConfig())
	if err != nil {
		return err
	}
	storageService = svc
	log.Println("🔗 File storage driver ready")
	return nil
}

// relayUpstreamError forwards the storage provider's response untouched so
// the admin panel sees the provider's own error payload.
func relayUpstreamError(ctx *gin.Context, err error) bool {
	var upstream *services.UpstreamError
	if errors.As(err, &upstream) {
		ctx.Data(upstream.StatusCode, "application/json", []byte(upstream.Body))
		return true
	}
	return false
}

// UploadFile proxies a file to the storage provider
// @Summary Upload file
// @Description Forwards the uploaded file to the configured storage provider and returns the provider's response
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} handlers.MessageResponse "Missing or oversized file"
// @Failure 500 {object} handlers.MessageResponse "Storage not configured"
// @Router /uploads/upload [post]
func UploadFile(ctx *gin.Context) {
	if storageService == nil {
		respondServerError(ctx, "File storage is not configured")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		respondBadRequest(ctx, "No file provided")
		return
	}

	cfg := config.GetConfig()
	if fileHeader.Size > cfg.GetUploadMaxFileSizeBytes() {
		respondBadRequest(ctx, fmt.Sprintf("File exceeds the %sMB size limit", cfg.UploadMaxFileSizeMB))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondServerError(ctx, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := storageService.Upload(ctx.Request.Context(), services.UploadFile{
		Name:        fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		if relayUpstreamError(ctx, err) {
			return
		}
		log.Printf("❌ Upload failed: %v", err)
		respondServerError(ctx, "Failed to upload file")
		return
	}

	respondData(ctx, http.StatusOK, result)
}

// GetUploadToken returns the client SDK token for browser-side uploads
// @Summary Get upload token
// @Description Returns the storage provider token used by the admin panel's upload widget
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} handlers.MessageResponse "Storage not configured"
// @Router /uploads/token [get]
func GetUploadToken(ctx *gin.Context) {
	token := services.BuildUploadThingToken(config.GetConfig())
	if token == "" {
		respondServerError(ctx, "File storage is not configured")
		return
	}

	respondData(ctx, http.StatusOK, gin.H{"token": token})
}

// DeleteFileRequest names the stored file to remove
type DeleteFileRequest struct {
	FileKey string `json:"fileKey" binding:"required"`
}

// DeleteFile removes a file from the storage provider
// @Summary Delete file
// @Description Asks the storage provider to delete the file behind the given key
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body handlers.DeleteFileRequest true "File key"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} handlers.MessageResponse "Storage not configured"
// @Router /uploads/delete [post]
func DeleteFile(ctx *gin.Context) {
	if storageService == nil {
		respondServerError(ctx, "File storage is not configured")
		return
	}

	var req DeleteFileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	result, err := storageService.Delete(ctx.Request.Context(), req.FileKey)
	if err != nil {
		if relayUpstreamError(ctx, err) {
			return
		}
		log.Printf("❌ Delete failed for key %s: %v", req.FileKey, err)
		respondServerError(ctx, "Failed to delete file")
		return
	}

	respondData(ctx, http.StatusOK, result)
}
