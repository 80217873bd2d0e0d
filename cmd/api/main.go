package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"faunagram/internal/adapters/auth/hs256"
	"faunagram/internal/adapters/blobstore"
	pg "faunagram/internal/adapters/storage/postgres"
	"faunagram/internal/config"
	"faunagram/internal/platform/logger"
	"faunagram/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional; en prod la config llega por env real
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		if _, err := os.Stat("faunagram.toml"); err == nil {
			cfgPath = "faunagram.toml"
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		// sin logger todavía: config es lo primero que se resuelve
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.FromConfig(cfg.LogLevel, cfg.LogFormat)

	tokens, err := hs256.New(cfg.JWTSecret)
	if err != nil {
		log.Error("token service init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	ctx := context.Background()

	bucket, err := blobstore.NewFromConfig(ctx, cfg.Storage)
	if err != nil {
		log.Error("storage init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres connection failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
	}

	opts := router.Options{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Bucket:   bucket,
		Issuer:   tokens,
		Verifier: tokens,
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{
		"addr":    cfg.Addr,
		"storage": cfg.Storage.Type,
		"db":      cfg.DBDSN != "",
	})

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
