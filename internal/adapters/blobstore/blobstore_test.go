package blobstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"faunagram/internal/config"
)

func TestMemoryBucket_PutAndGet(t *testing.T) {
	b := NewMemoryBucket("test-bucket")

	content := []byte("fake-image-bytes")
	err := b.Put(context.Background(), "avatars/u1_1_cat.jpg", "image/jpeg", bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := b.Get("avatars/u1_1_cat.jpg")
	if !ok || !bytes.Equal(got, content) {
		t.Fatalf("stored content mismatch")
	}

	if url := b.PublicURL("avatars/u1_1_cat.jpg"); !strings.Contains(url, "test-bucket") {
		t.Fatalf("unexpected public url %q", url)
	}
}

func TestMemoryBucket_SizeMismatch(t *testing.T) {
	b := NewMemoryBucket("")
	err := b.Put(context.Background(), "k", "text/plain", strings.NewReader("abc"), 99)
	if err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestSupabaseBucket_Put(t *testing.T) {
	var gotPath, gotAuth, gotCT string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"faunagram/avatars/x.png"}`))
	}))
	defer srv.Close()

	b, err := NewSupabaseBucket(config.StorageConfig{
		Type:        "supabase",
		Bucket:      "faunagram",
		SupabaseURL: srv.URL,
		SupabaseKey: "svc-key",
	})
	if err != nil {
		t.Fatalf("NewSupabaseBucket: %v", err)
	}

	content := []byte{0x89, 'P', 'N', 'G'}
	if err := b.Put(context.Background(), "avatars/x.png", "image/png", bytes.NewReader(content), int64(len(content))); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if gotPath != "/storage/v1/object/faunagram/avatars/x.png" {
		t.Fatalf("unexpected upload path %q", gotPath)
	}
	if gotAuth != "Bearer svc-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotCT != "image/png" {
		t.Fatalf("unexpected content type %q", gotCT)
	}
	if !bytes.Equal(gotBody, content) {
		t.Fatalf("body mismatch")
	}

	wantURL := srv.URL + "/storage/v1/object/public/faunagram/avatars/x.png"
	if got := b.PublicURL("avatars/x.png"); got != wantURL {
		t.Fatalf("PublicURL: expected %q, got %q", wantURL, got)
	}
}

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	if _, err := NewFromConfig(ctx, config.StorageConfig{Type: "memory"}); err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, err := NewFromConfig(ctx, config.StorageConfig{Type: "supabase"}); err == nil {
		t.Fatal("supabase without url/key should fail")
	}
	if _, err := NewFromConfig(ctx, config.StorageConfig{Type: "s3"}); err == nil {
		t.Fatal("s3 without bucket should fail")
	}
	if _, err := NewFromConfig(ctx, config.StorageConfig{Type: "gcs"}); err == nil {
		t.Fatal("unknown type should fail")
	}
}
