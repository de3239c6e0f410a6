package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const maxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var (
	ErrImageTooLarge = errors.New("image size must be less than 5MB")
	ErrInvalidImage  = errors.New("invalid image format, only JPEG and PNG are allowed")
)

// StorageService uploads files to the object-storage bucket and returns
// public URLs; the URL is what gets persisted, as a plain string.
type StorageService struct {
	client *minio.Client
	cfg    *config.Config
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		slog.Info("created object-storage bucket", "bucket", cfg.MinIOBucket)
	}

	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{"arn:aws:s3:::" + cfg.MinIOBucket + "/*"},
			},
		},
	}
	policyJSON, _ := json.Marshal(policy)
	if err := client.SetBucketPolicy(ctx, cfg.MinIOBucket, string(policyJSON)); err != nil {
		slog.Warn("failed to set bucket policy", "error", err)
	}

	return &StorageService{client: client, cfg: cfg}, nil
}

// UploadImage validates and streams a multipart image to the bucket,
// returning its public URL.
func (s *StorageService) UploadImage(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	if file.Size > maxImageSize {
		return "", ErrImageTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "", ErrInvalidImage
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	objectName := fmt.Sprintf("%s/%s/%s%s", prefix, time.Now().Format("2006/01"), uuid.New().String(), ext)

	_, err = s.client.PutObject(ctx, s.cfg.MinIOBucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.publicURL(objectName), nil
}

func (s *StorageService) publicURL(objectName string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, objectName)
}
