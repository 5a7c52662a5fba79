package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectSource reads a seed file from an S3-compatible bucket
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
}

func NewObjectSource(cfg config.SeedConfig) (*ObjectSource, error) {
	if cfg.ObjectEndpoint == "" {
		return nil, fmt.Errorf("object storage endpoint must be provided")
	}
	if cfg.ObjectBucket == "" || cfg.ObjectKey == "" {
		return nil, fmt.Errorf("object storage bucket and key must be provided")
	}

	endpoint := cfg.ObjectEndpoint
	useSSL := cfg.ObjectUseSSL
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		endpoint, useSSL = strings.TrimPrefix(endpoint, "https://"), true
	case strings.HasPrefix(endpoint, "http://"):
		endpoint, useSSL = strings.TrimPrefix(endpoint, "http://"), false
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ObjectAccessKey, cfg.ObjectSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	return &ObjectSource{client: client, bucket: cfg.ObjectBucket, key: cfg.ObjectKey}, nil
}

func (s *ObjectSource) LoadNetwork(ctx context.Context) ([]domain.Location, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", s.bucket, s.key, err)
	}
	defer obj.Close()

	locations, err := Parse(s.key, obj)
	if err != nil {
		return nil, fmt.Errorf("object %s/%s: %w", s.bucket, s.key, err)
	}
	return locations, nil
}
