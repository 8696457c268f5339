package router

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	mem "pet-care-dashboard/internal/adapters/storage/memory"
	pg "pet-care-dashboard/internal/adapters/storage/postgres"
	"pet-care-dashboard/internal/domain/appointments"
	"pet-care-dashboard/internal/domain/catalog"
	"pet-care-dashboard/internal/domain/dashboard"
	"pet-care-dashboard/internal/domain/health"
	"pet-care-dashboard/internal/domain/medications"
	"pet-care-dashboard/internal/domain/pets"
	"pet-care-dashboard/internal/domain/screens"
	"pet-care-dashboard/internal/middleware"
	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/ports/auth"
	"pet-care-dashboard/internal/seed"

	_ "pet-care-dashboard/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger       logger.Logger           // nil => sin log de requests
	RateLimiter  *middleware.RateLimiter // nil => sin límite
	CatalogCache catalog.Cache           // nil => sin cache

	// SeedDemoUser vacío => solo se siembra el catálogo.
	SeedDemoUser string
}

type repos struct {
	pets         pets.Repository
	appointments appointments.Repository
	medications  medications.Repository
	catalog      catalog.Repository
	health       health.Repository
	screens      screens.Repository
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			pets:         pg.NewPetsRepo(db),
			appointments: pg.NewAppointmentsRepo(db),
			medications:  pg.NewMedicationsRepo(db),
			catalog:      pg.NewCatalogRepo(db),
			health:       pg.NewHealthRepo(db),
			screens:      pg.NewScreensRepo(db),
		}
	}
	return repos{
		pets:         mem.NewPetRepo(),
		appointments: mem.NewAppointmentRepo(),
		medications:  mem.NewMedicationRepo(),
		catalog:      mem.NewCatalogRepo(),
		health:       mem.NewHealthRepo(),
		screens:      mem.NewScreenRepo(),
	}
}

// NewRouter arma servicios y rutas. Falla solo si el seed no puede escribir.
func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLog(opts.Logger))
	}
	r.Use(middleware.RateLimit(opts.RateLimiter))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/nav", navHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	rp := newRepos(opts.DB)

	// Services por módulo
	petsSvc := pets.NewService(rp.pets)
	apptSvc := appointments.NewService(rp.appointments)
	medsSvc := medications.NewService(rp.medications)
	catalogSvc := catalog.NewService(rp.catalog, opts.CatalogCache, log)
	healthSvc := health.NewService(rp.health)
	dashSvc := dashboard.NewService(petsSvc, apptSvc, medsSvc)
	screensSvc := screens.NewService(rp.screens, map[screens.Screen]screens.Resolver{
		screens.ScreenPets:         petsSvc.Exists,
		screens.ScreenAppointments: apptSvc.Exists,
		screens.ScreenTracker:      medsSvc.Exists,
		screens.ScreenHealth:       petsSvc.Exists,
		screens.ScreenMedications:  productOfKind(catalogSvc, catalog.KindMedication),
		screens.ScreenVaccinations: productOfKind(catalogSvc, catalog.KindVaccination),
	})

	if err := seed.Run(context.Background(), seed.Services{
		Pets:         petsSvc,
		Appointments: apptSvc,
		Medications:  medsSvc,
		Catalog:      catalogSvc,
		Health:       healthSvc,
	}, opts.SeedDemoUser, log); err != nil {
		return nil, err
	}

	// Rutas por módulo
	dashboard.RegisterRoutes(r, dashSvc)
	pets.RegisterRoutes(r, petsSvc)
	appointments.RegisterRoutes(r, apptSvc)
	catalog.RegisterRoutes(r, catalogSvc)
	medications.RegisterRoutes(r, medsSvc)
	health.RegisterRoutes(r, healthSvc, petsSvc)
	screens.RegisterRoutes(r, screensSvc)

	return r, nil
}

// productOfKind: el catálogo es compartido, el dueño no importa.
func productOfKind(svc *catalog.Service, kind catalog.Kind) screens.Resolver {
	return func(ctx context.Context, _ string, id string) (bool, error) {
		p, err := svc.GetByID(ctx, id)
		if errors.Is(err, catalog.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return p.Kind == kind, nil
	}
}
