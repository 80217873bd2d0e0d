package blobstore

import (
	"context"
	"fmt"

	"faunagram/internal/config"
	"faunagram/internal/ports/blob"
)

// NewFromConfig crea el backend de object storage según config.
func NewFromConfig(ctx context.Context, cfg config.StorageConfig) (blob.Bucket, error) {
	switch cfg.Type {
	case "memory", "":
		return NewMemoryBucket(cfg.Bucket), nil
	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("s3 storage requires bucket to be set")
		}
		return NewS3Bucket(ctx, cfg)
	case "supabase":
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return nil, fmt.Errorf("supabase storage requires supabase_url and supabase_key")
		}
		return NewSupabaseBucket(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
