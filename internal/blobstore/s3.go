package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/newsroom-next/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store S3 兼容对象存储（Cloudflare R2 等）
type S3Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store 创建 S3 兼容存储
func NewS3Store(cfg config.BlobConfig) (*S3Store, error) {
	endpoint := cfg.ResolveEndpoint()
	if endpoint == "" {
		return nil, fmt.Errorf("blob endpoint or account_id is required for the s3 provider")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("blob bucket is required for the s3 provider")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client failed: %w", err)
	}

	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put 写入对象
func (s *S3Store) Put(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return s.PublicURL(name), nil
}

// PresignPut 生成限时直传 URL
func (s *S3Store) PresignPut(ctx context.Context, name string, expires time.Duration) (string, error) {
	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, name, expires)
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}

// PublicURL 对象的公开访问地址
func (s *S3Store) PublicURL(name string) string {
	if s.publicBaseURL == "" {
		return fmt.Sprintf("https://%s/%s/%s", s.client.EndpointURL().Host, s.bucket, name)
	}
	return fmt.Sprintf("%s/%s", s.publicBaseURL, name)
}
