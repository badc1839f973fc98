package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/RouletteCampaign_Go/internal/campaign"
	"github.com/osse101/RouletteCampaign_Go/internal/database"
	"github.com/osse101/RouletteCampaign_Go/internal/eventlog"
	"github.com/osse101/RouletteCampaign_Go/internal/handler"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
	"github.com/osse101/RouletteCampaign_Go/internal/metrics"
	"github.com/osse101/RouletteCampaign_Go/internal/roulette"
	"github.com/osse101/RouletteCampaign_Go/internal/spin"
	"github.com/osse101/RouletteCampaign_Go/internal/sse"
)

// Dependencies holds everything the HTTP layer needs
type Dependencies struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	DBPool         database.Pool

	RouletteService roulette.Service
	SpinService     spin.Service
	CampaignService campaign.Service
	EventLogService eventlog.Service

	// Hub serves the live winners stream; the route is not mounted when nil
	Hub *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", deps.Port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. The admin group is the only one behind the API key.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(deps.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	rouletteHandler := handler.NewRouletteHandler(deps.RouletteService)
	spinHandler := handler.NewSpinHandler(deps.SpinService)
	adminHandler := handler.NewAdminHandler(deps.CampaignService)
	eventLogHandler := handler.NewEventLogHandler(deps.EventLogService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		if deps.Hub != nil {
			r.Get("/stream", sse.Handler(deps.Hub))
		}

		r.Route("/roulettes", func(r chi.Router) {
			r.Get("/", rouletteHandler.HandleList)
			r.Post("/validate", spinHandler.HandleValidate)
			r.Post("/spin", spinHandler.HandleSpin)
			r.Get("/{slug}", rouletteHandler.HandleGet)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(deps.APIKey, deps.TrustedProxies, detector))

			r.Route("/roulettes", func(r chi.Router) {
				r.Post("/", adminHandler.HandleCreateRoulette)
				r.Put("/{id}", adminHandler.HandleUpdateRoulette)
				r.Post("/{id}/awards", adminHandler.HandleCreateAward)
				r.Get("/{id}/winners", adminHandler.HandleListWinners)
				r.Get("/{id}/events", eventLogHandler.HandleListEvents)
			})
			r.Put("/awards/{id}", adminHandler.HandleUpdateAward)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer (SSE flushing)
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
