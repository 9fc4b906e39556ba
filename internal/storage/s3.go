// Package storage uploads user supplied images (team logos, profile
// avatars) to an S3 compatible object store and hands back the public
// URL the rows reference.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/config"
)

// ErrNotConfigured is returned when uploads are attempted without an
// object store in the environment.  The rest of the service works fine
// without one; only logo and avatar uploads need it.
var ErrNotConfigured = errors.New("object storage is not configured")

// Uploader wraps an S3 client scoped to one bucket.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewUploader builds an Uploader from config, or returns nil when the
// bucket is unset.  A custom endpoint (MinIO and friends) switches the
// client to path style addressing.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}
	client := s3.New(s3.Options{
		Region:       cfg.S3Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		UsePathStyle: cfg.S3Endpoint != "",
		BaseEndpoint: endpointOrNil(cfg.S3Endpoint),
	})
	return &Uploader{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}
}

func endpointOrNil(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

// Upload stores body under key and returns the public URL.  Calling
// Upload on a nil Uploader reports ErrNotConfigured so handlers can
// turn it into a clean client error.
func (u *Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if u == nil {
		return "", ErrNotConfigured
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return u.PublicURL(key), nil
}

// PublicURL maps an object key to the URL stored on the row.  With a
// public base URL configured that wins; otherwise the standard
// virtual-hosted S3 form is used.
func (u *Uploader) PublicURL(key string) string {
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.client.Options().Region, key)
}
