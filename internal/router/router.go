package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "pet-adoption-service/internal/adapters/storage/memory"
	pg "pet-adoption-service/internal/adapters/storage/postgres"
	"pet-adoption-service/internal/domain/applications"
	"pet-adoption-service/internal/domain/pets"
	"pet-adoption-service/internal/domain/profiles"
	"pet-adoption-service/internal/domain/reconcile"
	"pet-adoption-service/internal/domain/views"
	"pet-adoption-service/internal/middleware"
	"pet-adoption-service/internal/platform/logger"
	"pet-adoption-service/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-adoption-service/docs" // registra el spec OpenAPI
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Logger logger.Logger // puede ser nil

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		petRepo     pets.Repository
		appRepo     applications.Repository
		profileRepo profiles.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		appRepo = pg.NewApplicationsRepo(db)
		profileRepo = pg.NewProfilesRepo(db)
	} else {
		petRepo = mem.NewPetRepo()
		appRepo = mem.NewApplicationRepo()
		profileRepo = mem.NewProfileRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	appsSvc := applications.NewService(appRepo, petsSvc)
	profilesSvc := profiles.NewService(profileRepo)

	// UN solo reconciler para todos los read-paths.
	rec := reconcile.New(opts.Logger)
	statuses := views.NewStatusService(appsSvc, rec)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, statuses)
	applications.RegisterRoutes(r, appsSvc)
	profiles.RegisterRoutes(r, profilesSvc)
	views.RegisterRoutes(r, views.Services{
		Pets:     petsSvc,
		Apps:     appsSvc,
		Profiles: profilesSvc,
		Rec:      rec,
	})

	return r
}
