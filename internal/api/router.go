package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/noemalabs/noema/internal/analysis"
	"github.com/noemalabs/noema/internal/api/handlers"
	mw "github.com/noemalabs/noema/internal/api/middleware"
	"github.com/noemalabs/noema/internal/config"
	"github.com/noemalabs/noema/internal/domain"
	"github.com/noemalabs/noema/internal/service"
	"github.com/noemalabs/noema/internal/store"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router   *chi.Mux
	Archiver *service.ArchiverService

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires stores, capabilities, services and handlers into the HTTP
// router. db may be nil; the thought archive is then disabled.
func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	graph := store.NewGraphStore()

	// Optional capabilities via provider factory
	provider := config.AnalysisProvider()
	readability, err := analysis.NewReadability(provider)
	if err != nil {
		logger.Warn("readability capability unavailable", zap.String("provider", provider), zap.Error(err))
	}
	similarity, err := analysis.NewSimilarity(provider)
	if err != nil {
		logger.Warn("similarity capability unavailable", zap.String("provider", provider), zap.Error(err))
	}

	// Services
	qualitySvc := service.NewQualityService(readability, logger)
	validationSvc := service.NewValidationService(similarity, logger)

	var archiveStore *store.ArchiveStore
	var archiverSvc *service.ArchiverService
	if db != nil {
		archiveStore = store.NewArchiveStore(db)
		archiverSvc = service.NewArchiverService(archiveStore, similarity, logger)
	}

	thoughtSvc := service.NewThoughtService(graph, qualitySvc, validationSvc, archiverSvc, logger)
	sessionSvc := service.NewSessionService(graph, validationSvc, logger)
	metacognitiveSvc := service.NewMetacognitiveService(graph, logger)
	strategySvc := service.NewStrategyService(logger)

	// Handlers
	defaultLang := config.DefaultLanguage()
	thoughtHandler := handlers.NewThoughtHandler(thoughtSvc, defaultLang)
	sessionHandler := handlers.NewSessionHandler(sessionSvc, defaultLang)
	cognitiveHandler := handlers.NewCognitiveHandler(metacognitiveSvc, strategySvc, defaultLang)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Archiver:  archiverSvc,
		startTime: time.Now(),
	}

	// Metrics collector for middleware
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/thoughts", func(r chi.Router) {
			r.Post("/", thoughtHandler.Create)
			r.Get("/{id}/path", thoughtHandler.GetPath)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/analysis", sessionHandler.Analyze)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/analysis", sessionHandler.Analyze)
				r.Get("/export", sessionHandler.Export)
			})
		})

		r.Route("/cognitive", func(r chi.Router) {
			r.Post("/reflect", cognitiveHandler.Reflect)
			r.Post("/strategy", cognitiveHandler.AdaptStrategy)
		})

		if archiveStore != nil {
			archiveHandler := handlers.NewArchiveHandler(archiveStore, similarity)
			r.Route("/archive", func(r chi.Router) {
				r.Get("/thoughts/{id}", archiveHandler.Get)
				r.Get("/similar", archiveHandler.Similar)
				r.Get("/sessions/{id}/count", archiveHandler.SessionCount)
			})
		}
	})

	return app
}

// NewRouter returns just the chi.Mux for callers that do not manage
// background services.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
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

// Ensure stores and capabilities satisfy interfaces at compile time.
var (
	_ domain.ThoughtStore       = (*store.GraphStore)(nil)
	_ domain.ThoughtArchiver    = (*store.ArchiveStore)(nil)
	_ domain.ReadabilityScorer  = (*analysis.FleschScorer)(nil)
	_ domain.SimilarityProvider = (*analysis.TermVectorizer)(nil)
)
