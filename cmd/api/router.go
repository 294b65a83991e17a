package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/FACorreiaa/terradart-api/pkg/middleware"
)

// SetupRouter configures all routes and returns the HTTP handler
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	registerCityDetailRoutes(mux, deps)
	registerLookupRoutes(mux, deps)
	registerUtilityRoutes(mux, deps)

	var limiter *rate.Limiter
	if deps.Config.Server.RateLimitPerSecond > 0 && deps.Config.Server.RateLimitBurst > 0 {
		limiter = rate.NewLimiter(
			rate.Limit(float64(deps.Config.Server.RateLimitPerSecond)),
			deps.Config.Server.RateLimitBurst,
		)
	}

	// Outermost first: a panic anywhere below still gets a request id and a
	// log line.
	var handler http.Handler = mux
	handler = middleware.RateLimit(limiter)(handler)
	handler = middleware.Logging(deps.Logger)(handler)
	handler = middleware.Recovery(deps.Logger)(handler)
	handler = middleware.RequestID(handler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: deps.Config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"X-Request-ID",
		},
		AllowCredentials: true,
	})

	return corsHandler.Handler(handler)
}

// registerCityDetailRoutes registers the aggregate and streaming detail routes
func registerCityDetailRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("GET /city/{city}/detail", deps.CityDetailHandler.GetCityDetail)
	mux.HandleFunc("GET /city/{city}/detail/stream", deps.CityDetailHandler.StreamCityDetail)
	deps.Logger.Info("registered city detail routes", "paths", []string{
		"/city/{city}/detail",
		"/city/{city}/detail/stream",
	})
}

// registerLookupRoutes registers the selection-form lookup routes
func registerLookupRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("GET /countries", deps.LookupHandler.Countries)
	mux.HandleFunc("GET /countries/{iso2}/states", deps.LookupHandler.States)
	mux.HandleFunc("GET /countries/{iso2}/cities", deps.LookupHandler.CitiesByCountry)
	mux.HandleFunc("GET /countries/{iso2}/states/{state}/cities", deps.LookupHandler.CitiesByState)
	mux.HandleFunc("GET /regions/{region}/city", deps.LookupHandler.CityByRegion)
	deps.Logger.Info("lookup routes configured")
}

// registerUtilityRoutes registers health check and metrics routes
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	deps.Logger.Info("registered health check", "path", "/health")

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	deps.Logger.Info("registered readiness check", "path", "/ready")

	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
}
