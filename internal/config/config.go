package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrMissingSecret = errors.New("jwt secret is required")

// Config agrupa toda la configuración del servicio.
// El secreto de firma vive acá y se inyecta explícitamente al token service;
// nunca se loguea ni se lee de env dentro de los adapters.
type Config struct {
	Addr      string `toml:"addr"`
	DBDSN     string `toml:"db_dsn"`
	JWTSecret string `toml:"jwt_secret"`

	// CORS: lista de orígenes permitidos. Vacío o "*" => wildcard.
	AllowedOrigins []string `toml:"allowed_origins"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	Storage StorageConfig `toml:"storage"`
}

// StorageConfig es una tagged union: Type decide qué campos aplican.
type StorageConfig struct {
	Type   string `toml:"type"` // "s3", "supabase" o "memory"
	Bucket string `toml:"bucket"`
	Prefix string `toml:"prefix,omitempty"`

	// S3 (solo Type == "s3")
	S3Region string `toml:"s3_region,omitempty"`
	// Credenciales estáticas opcionales; si faltan aplica la cadena default del SDK.
	S3AccessKey string `toml:"s3_access_key,omitempty"`
	S3SecretKey string `toml:"s3_secret_key,omitempty"`
	// Si está vacío se arma la URL pública estándar de S3.
	S3PublicBaseURL string `toml:"s3_public_base_url,omitempty"`

	// Supabase Storage (solo Type == "supabase")
	SupabaseURL string `toml:"supabase_url,omitempty"`
	SupabaseKey string `toml:"supabase_key,omitempty"`
}

// Default devuelve una config usable para dev: memoria en todo.
func Default() Config {
	return Config{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
		Storage: StorageConfig{
			Type:   "memory",
			Bucket: "faunagram",
		},
	}
}

// Load lee la config desde un archivo TOML (si path != "") y luego
// aplica overrides por env. El archivo es opcional; env siempre gana.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, ErrMissingSecret
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = ":8080"
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DBDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.AllowedOrigins = splitOrigins(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		cfg.Storage.S3Region = v
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		cfg.Storage.SupabaseURL = v
	}
	if v := os.Getenv("SUPABASE_SERVICE_KEY"); v != "" {
		cfg.Storage.SupabaseKey = v
	}
	if v := os.Getenv("SUPABASE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
}

// WildcardOrigins indica si hay que responder CORS con "*".
func (c Config) WildcardOrigins() bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
