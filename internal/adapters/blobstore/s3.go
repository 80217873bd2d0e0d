package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"faunagram/internal/config"
	"faunagram/internal/ports/blob"
)

// S3Bucket sube objetos a S3 vía manager.Uploader.
type S3Bucket struct {
	uploader   *manager.Uploader
	bucket     string
	prefix     string
	region     string
	publicBase string
}

func NewS3Bucket(ctx context.Context, cfg config.StorageConfig) (*S3Bucket, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3Region))
	}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &S3Bucket{
		uploader:   manager.NewUploader(client),
		bucket:     cfg.Bucket,
		prefix:     strings.Trim(cfg.Prefix, "/"),
		region:     awsCfg.Region,
		publicBase: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}, nil
}

func (b *S3Bucket) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.fullKey(key)),
		Body:   r,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := b.uploader.Upload(ctx, in); err != nil {
		return fmt.Errorf("s3 upload %s: %w", key, err)
	}
	return nil
}

func (b *S3Bucket) PublicURL(key string) string {
	if b.publicBase != "" {
		return b.publicBase + "/" + b.fullKey(key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, b.fullKey(key))
}

func (b *S3Bucket) fullKey(key string) string {
	if b.prefix == "" {
		return key
	}
	return b.prefix + "/" + key
}

var _ blob.Bucket = (*S3Bucket)(nil)
