package services

import (
	"context"
	"fmt"
	"io"

	"marigold-backend/shared/config"
)

// UploadFile is one inbound multipart file
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// StorageService stores and deletes uploaded files. Upload returns the
// provider response body to be re-wrapped in the API envelope.
type StorageService interface {
	Upload(ctx context.Context, file UploadFile) (interface{}, error)
	Delete(ctx context.Context, fileKey string) (interface{}, error)
}

// UpstreamError carries a remote storage API failure so the handler can
// relay status code and body unchanged
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream storage error (%d): %s", e.StatusCode, e.Body)
}

// NewStorageService builds the configured storage driver
func NewStorageService(cfg *config.Config) (StorageService, error) {
	switch cfg.StorageDriver {
	case "minio":
		return NewMinIOService(cfg)
	case "uploadthing", "":
		return NewUploadThingService(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}
