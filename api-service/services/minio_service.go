package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"marigold-backend/shared/config"
	utils "marigold-backend/shared/utils/auth"
)

// MinIOService stores uploads in a self-hosted MinIO bucket
type MinIOService struct {
	client     *minio.Client
	bucketName string
	serverURL  string
}

// NewMinIOService connects to MinIO and ensures the upload bucket exists
func NewMinIOService(cfg *config.Config) (*MinIOService, error) {
	parsedURL, err := url.Parse(cfg.MinIOServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MinIO endpoint: %w", err)
	}

	endpoint := parsedURL.Host
	useSSL := cfg.MinIOUseSSL

	log.Printf("🔗 Connecting to MinIO: %s (SSL: %v)", endpoint, useSSL)

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIORootUser, cfg.MinIORootPassword, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	service := &MinIOService{
		client:     minioClient,
		bucketName: cfg.MinIOBucketName,
		serverURL:  strings.TrimRight(cfg.MinIOServerURL, "/"),
	}

	if err := service.initializeBucket(); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *MinIOService) initializeBucket() error {
	ctx := context.Background()

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Printf("✅ MinIO bucket '%s' created successfully", s.bucketName)
	}

	return nil
}

// Upload stores the file under a random key and returns its public URL.
// The response mirrors the hosted provider's shape so admin tooling can
// treat both drivers the same.
func (s *MinIOService) Upload(ctx context.Context, file UploadFile) (interface{}, error) {
	token, err := utils.GenerateRandomToken(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate object key: %w", err)
	}
	objectKey := token + "_" + path.Base(file.Name)

	_, err = s.client.PutObject(ctx, s.bucketName, objectKey, file.Reader, file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store object: %w", err)
	}

	log.Printf("✅ MinIO object stored: %s (%d bytes)", objectKey, file.Size)

	return map[string]interface{}{
		"data": []map[string]interface{}{
			{
				"url":  fmt.Sprintf("%s/%s/%s", s.serverURL, s.bucketName, objectKey),
				"key":  objectKey,
				"name": file.Name,
				"size": file.Size,
			},
		},
	}, nil
}

// Delete removes an object by key
func (s *MinIOService) Delete(ctx context.Context, fileKey string) (interface{}, error) {
	if err := s.client.RemoveObject(ctx, s.bucketName, fileKey, minio.RemoveObjectOptions{}); err != nil {
		return nil, fmt.Errorf("failed to delete object: %w", err)
	}

	log.Printf("✅ MinIO object deleted: %s", fileKey)

	return map[string]interface{}{"success": true, "deletedCount": 1}, nil
}
