package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"faunagram/internal/adapters/blobstore"
	mem "faunagram/internal/adapters/storage/memory"
	pg "faunagram/internal/adapters/storage/postgres"
	"faunagram/internal/config"
	"faunagram/internal/domain/animals"
	"faunagram/internal/domain/comments"
	"faunagram/internal/domain/sightings"
	"faunagram/internal/domain/users"
	"faunagram/internal/middleware"
	"faunagram/internal/platform/httpjson"
	"faunagram/internal/platform/logger"
	"faunagram/internal/ports/auth"
	"faunagram/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Config config.Config
	Logger logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si no viene, bucket en memoria.
	Bucket blob.Bucket

	Issuer   auth.TokenIssuer
	Verifier auth.AuthVerifier

	// Catálogo inicial de animales; útil en modo memoria (dev/tests).
	// Contra Postgres el seed corre aparte (cmd/seed).
	SeedAnimals []animals.Animal
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.FromConfig(opts.Config.LogLevel, opts.Config.LogFormat)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(10 * time.Second))

	r.Use(middleware.CORS(opts.Config.AllowedOrigins))
	r.Use(middleware.AuthContext(opts.Verifier))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		// envelope distinto a propósito: es el fallback del router,
		// no un error de handler
		httpjson.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Route not found"})
	})

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	var (
		userRepo     users.Repository
		animalRepo   animals.Repository
		sightingRepo sightings.Repository
		commentRepo  comments.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}

	if db != nil {
		userRepo = pg.NewUsersRepo(db)
		animalRepo = pg.NewAnimalsRepo(db)
		sightingRepo = pg.NewSightingsRepo(db)
		commentRepo = pg.NewCommentsRepo(db)
	} else {
		userRepo = mem.NewUserRepo()
		animalRepo = mem.NewAnimalRepo()
		sightingRepo = mem.NewSightingRepo()
		commentRepo = mem.NewCommentRepo()
	}

	bucket := opts.Bucket
	if bucket == nil {
		bucket = blobstore.NewMemoryBucket(opts.Config.Storage.Bucket)
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	animalsSvc := animals.NewService(animalRepo)
	sightingsSvc := sightings.NewService(sightingRepo)
	commentsSvc := comments.NewService(commentRepo)

	for _, a := range opts.SeedAnimals {
		if _, err := animalsSvc.Create(context.Background(), a); err != nil {
			log.Warn("animal seed skipped", map[string]any{
				"animal": a.Name,
				"error":  err.Error(),
			})
		}
	}

	// Rutas por módulo, todas bajo /api/v1
	r.Route("/api/v1", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc, opts.Issuer, bucket, commentsSvc, log)
		animals.RegisterRoutes(api, animalsSvc)
		sightings.RegisterRoutes(api, sightingsSvc, sightings.Deps{
			Users:    usersSvc,
			Animals:  animalsSvc,
			Comments: commentsSvc,
			Bucket:   bucket,
			Log:      log,
		})
		comments.RegisterRoutes(api, commentsSvc)
	})

	return r
}
