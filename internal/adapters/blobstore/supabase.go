package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"faunagram/internal/config"
	"faunagram/internal/platform/httpclient"
	"faunagram/internal/ports/blob"
)

// SupabaseBucket sube objetos a Supabase Storage por su API REST.
// La service key va como Bearer; la URL pública es el endpoint
// /object/public estándar.
type SupabaseBucket struct {
	client *httpclient.Client
	bucket string
	key    string
}

func NewSupabaseBucket(cfg config.StorageConfig) (*SupabaseBucket, error) {
	client, err := httpclient.NewWithBaseURL(cfg.SupabaseURL, httpclient.DefaultTimeout)
	if err != nil {
		return nil, fmt.Errorf("supabase url: %w", err)
	}
	return &SupabaseBucket{
		client: client,
		bucket: cfg.Bucket,
		key:    cfg.SupabaseKey,
	}, nil
}

func (b *SupabaseBucket) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	path := fmt.Sprintf("/storage/v1/object/%s/%s", b.bucket, escapeKey(key))

	headers := map[string]string{
		"Authorization": "Bearer " + b.key,
	}
	if size >= 0 {
		r = io.LimitReader(r, size)
	}

	if err := b.client.Do(ctx, "POST", path, headers, contentType, r, nil); err != nil {
		return fmt.Errorf("supabase upload %s: %w", key, err)
	}
	return nil
}

func (b *SupabaseBucket) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", b.client.BaseURL, b.bucket, escapeKey(key))
}

// escapeKey escapa cada segmento pero conserva los "/" de la key.
func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

var _ blob.Bucket = (*SupabaseBucket)(nil)
