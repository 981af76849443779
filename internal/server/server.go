package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/spinworks/SlotEngine_Go/internal/database"
	"github.com/spinworks/SlotEngine_Go/internal/handler"
	"github.com/spinworks/SlotEngine_Go/internal/ledger"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/metrics"
	"github.com/spinworks/SlotEngine_Go/internal/spin"
	"github.com/spinworks/SlotEngine_Go/internal/theme"
)

type Server struct {
	httpServer    *http.Server
	dbPool        database.Pool
	spinService   spin.Service
	ledgerService ledger.Service
}

// NewServer creates a new Server instance with all routes wired
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, spinService spin.Service, ledgerService ledger.Service, themes *theme.Registry) *Server {
	r := chi.NewRouter()

	// Middleware stack runs in the order defined, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.MetricsMiddleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint for deployment verification
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		spinHandler := handler.NewSpinHandler(spinService)
		r.Route("/spin", func(r chi.Router) {
			r.Post("/", spinHandler.HandleSpin)
			r.Get("/history", spinHandler.HandleGetHistory)
			r.Get("/{id}", spinHandler.HandleGetSpin)
			r.Get("/{id}/audit", spinHandler.HandleAudit)
		})

		walletHandler := handler.NewWalletHandler(ledgerService)
		r.Route("/wallet", func(r chi.Router) {
			r.Get("/balance", walletHandler.HandleGetBalance)
			r.Post("/adjust", walletHandler.HandleAdjust)
			r.Get("/transactions", walletHandler.HandleGetTransactions)
			r.Get("/verify", walletHandler.HandleVerify)
		})

		themeHandler := handler.NewThemeHandler(themes)
		r.Route("/themes", func(r chi.Router) {
			r.Get("/", themeHandler.HandleListThemes)
			r.Get("/{key}", themeHandler.HandleGetTheme)
			r.Post("/{key}/invalidate", themeHandler.HandleInvalidateTheme)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:        dbPool,
		spinService:   spinService,
		ledgerService: ledgerService,
	}
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
		statusCode:     http.StatusOK,
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics endpoints would drown out everything else
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
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
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
