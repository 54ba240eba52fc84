package wire

import (
	"net/http"
	"time"

	"course-portal/internal/adaptor"
	"course-portal/internal/data/entity"
	"course-portal/internal/data/repository"
	"course-portal/internal/usecase"
	"course-portal/pkg/middleware"
	"course-portal/pkg/ratelimit"
	"course-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired router and the services main needs at startup
type App struct {
	Router   *chi.Mux
	Service  *usecase.Service
	Registry *prometheus.Registry
}

// guards are the middleware chains routes opt into
type guards struct {
	auth      func(http.Handler) http.Handler
	admin     func(http.Handler) http.Handler
	rateLimit func(http.Handler) http.Handler
}

// Wiring builds services, handlers and routes on top of the given repositories.
// A nil limiter falls back to an in-process one.
func Wiring(
	repo *repository.Repository,
	db adaptor.Pinger,
	limiter ratelimit.Limiter,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	tokens := utils.NewTokenManager(config.JWT.Secret, config.JWT.TTL(), config.JWT.Issuer)

	if limiter == nil {
		limiter = ratelimit.NewMemoryLimiter(config.RateLimit.PerMinute, time.Minute)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	g := guards{
		auth:      middleware.Authenticate(tokens, repo.User, logger),
		admin:     middleware.RequireRole(entity.RoleAdmin, logger),
		rateLimit: middleware.RateLimit(limiter, "auth", logger),
	}

	router := setupRouter(handler, adaptor.NewHealthHandler(db, logger), g, registry, config, logger)

	return &App{
		Router:   router,
		Service:  service,
		Registry: registry,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	health *adaptor.HealthHandler,
	g guards,
	registry *prometheus.Registry,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics(registry)

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.CORSOrigins))
	r.Use(metrics.Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, false, "Method not allowed", nil, nil)
	})

	// Apply routes
	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wireCourse(r, handler.Course, g)
	wirePurchase(r, handler.Purchase, g)

	r.Get("/health", health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	return r
}
