package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/geneblend/geneblend/internal/api/handlers"
	mw "github.com/geneblend/geneblend/internal/api/middleware"
	"github.com/geneblend/geneblend/internal/buildconfig"
	"github.com/geneblend/geneblend/internal/config"
	"github.com/geneblend/geneblend/internal/domain"
	"github.com/geneblend/geneblend/internal/genetics"
	"github.com/geneblend/geneblend/internal/i18n"
	"github.com/geneblend/geneblend/internal/service"
	"github.com/geneblend/geneblend/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const calculatePath = "/v1/calculate"

// Stores bundles the persistence the app needs.
type Stores struct {
	Calculations   domain.CalculationStore
	EducationCards domain.EducationCardStore
	FunFacts       domain.FunFactStore
	ChromosomeInfo domain.ChromosomeInfoStore
}

func PostgresStores(db *pgxpool.Pool) Stores {
	return Stores{
		Calculations:   store.NewCalculationStore(db),
		EducationCards: store.NewEducationCardStore(db),
		FunFacts:       store.NewFunFactStore(db),
		ChromosomeInfo: store.NewChromosomeInfoStore(db),
	}
}

func InMemoryStores() Stores {
	return Stores{
		Calculations:   store.NewInMemoryCalculationStore(),
		EducationCards: store.NewInMemoryEducationCardStore(),
		FunFacts:       store.NewInMemoryFunFactStore(),
		ChromosomeInfo: store.NewInMemoryChromosomeInfoStore(),
	}
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Stores Stores
	// DB is nil when the stores are in memory.
	DB             Pinger
	Prior          genetics.Prior
	Parallel       bool
	CalculationTTL time.Duration
	SweepInterval  time.Duration
	AdminAPIKey    string
	DefaultLocale  string
	RateLimitRPS   float64
	RateLimitBurst int
}

// OptionsFromConfig fills everything except Stores and DB from the
// environment.
func OptionsFromConfig() (Options, error) {
	prior, err := genetics.ParsePrior(config.GeneticsPrior())
	if err != nil {
		return Options{}, fmt.Errorf("GENETICS_PRIOR: %w", err)
	}
	return Options{
		Prior:          prior,
		Parallel:       config.ParallelTraits(),
		CalculationTTL: config.CalculationTTL(),
		SweepInterval:  config.SweepInterval(),
		AdminAPIKey:    config.AdminAPIKey(),
		DefaultLocale:  config.DefaultLocale(),
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
	}, nil
}

// App holds the router and background services for lifecycle management.
type App struct {
	Router    *chi.Mux
	Sweeper   *service.SweeperService
	startTime time.Time
	metrics   *mw.MetricsCollector
}

func NewApp(opts Options, logger *zap.Logger) (*App, error) {
	locale := opts.DefaultLocale
	if locale == "" {
		locale = "en"
	}
	bundle, err := i18n.LoadEmbedded(locale)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}

	// Services
	calcSvc := service.NewCalculatorService(opts.Stores.Calculations, logger)
	calcSvc.SetPrior(opts.Prior)
	calcSvc.SetParallel(opts.Parallel)
	calcSvc.SetTTL(opts.CalculationTTL)

	contentSvc := service.NewContentService(opts.Stores.EducationCards, opts.Stores.FunFacts, opts.Stores.ChromosomeInfo, logger)

	sweeperSvc := service.NewSweeperService(opts.Stores.Calculations, logger)
	if opts.SweepInterval > 0 {
		sweeperSvc.SetInterval(opts.SweepInterval)
	}

	// Handlers
	calcHandler := handlers.NewCalculatorHandler(calcSvc, bundle)
	traitHandler := handlers.NewTraitHandler(bundle)
	contentHandler := handlers.NewContentHandler(contentSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Sweeper:   sweeperSvc,
		startTime: time.Now(),
		metrics:   mw.NewMetricsCollector(),
	}

	rps, burst := opts.RateLimitRPS, opts.RateLimitBurst
	if rps <= 0 {
		rps = config.RateLimitRPS()
	}
	if burst <= 0 {
		burst = config.RateLimitBurst()
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.Middleware(calculatePath))
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(rps, burst))

	r.Get("/health", healthHandler(opts.DB))
	r.Get("/metrics", app.metricsHandler())
	r.Get("/version", versionHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/calculate", calcHandler.Calculate)
		r.Route("/calculations/{id}", func(r chi.Router) {
			r.Get("/", calcHandler.GetByID)
			r.Delete("/", calcHandler.Delete)
		})

		r.Get("/traits", traitHandler.List)

		r.Get("/education", contentHandler.ListEducation)
		r.Get("/fun-facts/random", contentHandler.RandomFunFact)
		r.Get("/chromosome-info", contentHandler.ChromosomeInfo)

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.AdminAuth(opts.AdminAPIKey))
			r.Post("/education", contentHandler.CreateEducation)
			r.Post("/fun-facts", contentHandler.CreateFunFact)
			r.Put("/chromosome-info", contentHandler.SetChromosomeInfo)
		})
	})

	return app, nil
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if db == nil {
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "storage": "memory"})
			return
		}

		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "storage": "postgres"})
	}
}

func versionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(buildconfig.VersionInfo())
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)
		snap := app.metrics.Snapshot()

		response := map[string]any{
			"uptime_seconds":     uptime.Seconds(),
			"uptime_human":       uptime.Round(time.Second).String(),
			"request_count":      snap.Requests,
			"client_error_count": snap.ClientErrors,
			"server_error_count": snap.ServerErrors,
			"calculation_count":  snap.Calculations,
			"goroutines":         runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy interfaces at compile time.
var (
	_ domain.CalculationStore    = (*store.CalculationStore)(nil)
	_ domain.CalculationStore    = (*store.InMemoryCalculationStore)(nil)
	_ domain.EducationCardStore  = (*store.EducationCardStore)(nil)
	_ domain.EducationCardStore  = (*store.InMemoryEducationCardStore)(nil)
	_ domain.FunFactStore        = (*store.FunFactStore)(nil)
	_ domain.FunFactStore        = (*store.InMemoryFunFactStore)(nil)
	_ domain.ChromosomeInfoStore = (*store.ChromosomeInfoStore)(nil)
	_ domain.ChromosomeInfoStore = (*store.InMemoryChromosomeInfoStore)(nil)
	_ Pinger                     = (*pgxpool.Pool)(nil)
)
