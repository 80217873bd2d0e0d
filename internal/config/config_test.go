package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faunagram.toml")

	data := `
addr = ":9090"
jwt_secret = "from-file"
allowed_origins = ["https://app.example.com"]

[storage]
type = "supabase"
bucket = "faunagram"
supabase_url = "https://x.supabase.co"
supabase_key = "svc-key"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PORT", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("SUPABASE_BUCKET", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("S3_REGION", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// env gana sobre archivo
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("expected env secret, got %q", cfg.JWTSecret)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("expected addr from file, got %q", cfg.Addr)
	}
	if cfg.Storage.Type != "supabase" || cfg.Storage.SupabaseURL == "" {
		t.Fatalf("storage section not decoded: %+v", cfg.Storage)
	}
	if cfg.WildcardOrigins() {
		t.Fatalf("explicit origin list should not be wildcard")
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(""); err != ErrMissingSecret {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestWildcardOrigins(t *testing.T) {
	cases := []struct {
		origins []string
		want    bool
	}{
		{nil, true},
		{[]string{"*"}, true},
		{[]string{"https://a.com", "*"}, true},
		{[]string{"https://a.com"}, false},
	}
	for _, tc := range cases {
		c := Config{AllowedOrigins: tc.origins}
		if got := c.WildcardOrigins(); got != tc.want {
			t.Fatalf("origins=%v: expected %v, got %v", tc.origins, tc.want, got)
		}
	}
}
