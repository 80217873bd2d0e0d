package main

import (
	"context"
	"os"

	pg "faunagram/internal/adapters/storage/postgres"
	"faunagram/internal/config"
	"faunagram/internal/domain/animals"
	"faunagram/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Carga el catálogo de animales en Postgres. Idempotente no es:
// correrlo dos veces duplica filas (la tabla no tiene unique por nombre).
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.FromConfig(cfg.LogLevel, cfg.LogFormat)

	if cfg.DBDSN == "" {
		log.Error("seed requires DB_DSN", nil)
		os.Exit(1)
	}

	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		log.Error("postgres connection failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	svc := animals.NewService(pg.NewAnimalsRepo(db))
	ctx := context.Background()

	n := 0
	for _, a := range animals.SeedData() {
		if _, err := svc.Create(ctx, a); err != nil {
			log.Error("seed insert failed", map[string]any{
				"animal": a.Name,
				"error":  err.Error(),
			})
			os.Exit(1)
		}
		n++
	}

	log.Info("seed complete", map[string]any{"animals": n})
}
