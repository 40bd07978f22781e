package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tamaverse/TamaPet_Go/internal/handler"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/metrics"
	"github.com/tamaverse/TamaPet_Go/internal/monster"
	"github.com/tamaverse/TamaPet_Go/internal/shop"
	"github.com/tamaverse/TamaPet_Go/internal/wallet"
)

type Server struct {
	httpServer     *http.Server
	pool           *pgxpool.Pool
	walletService  wallet.Service
	shopService    shop.Service
	monsterService monster.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, pool *pgxpool.Pool, walletService wallet.Service, shopService shop.Service, monsterService monster.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewAbuseMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, monitor))
	r.Use(RateLimitMiddleware(trustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(pool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Wallet routes
		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", handler.HandleGetWallet(walletService))
			r.Get("/balance", handler.HandleGetBalance(walletService))
			r.Get("/transactions", handler.HandleGetTransactions(walletService))
			r.Post("/credit", handler.HandleCredit(walletService))
			r.Post("/debit", handler.HandleDebit(walletService))
		})

		// Shop routes
		r.Route("/shop", func(r chi.Router) {
			r.Get("/items", handler.HandleGetCatalog(shopService))
			r.Get("/items/{id}", handler.HandleGetItem(shopService))
			r.Post("/purchase", handler.HandlePurchase(shopService))
			r.Post("/equip", handler.HandleEquip(shopService))
			r.Post("/unequip", handler.HandleUnequip(shopService))
		})

		// Monster routes
		r.Route("/monsters", func(r chi.Router) {
			r.Get("/", handler.HandleListMonsters(monsterService))
			r.Post("/", handler.HandleCreateMonster(monsterService))
			r.Get("/price", handler.HandleNextMonsterPrice(monsterService))
			r.Get("/{id}", handler.HandleGetMonster(monsterService))
			r.Post("/{id}/action", handler.HandlePerformAction(monsterService))
			r.Get("/{monster_id}/inventory", handler.HandleGetInventory(shopService))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Post("/shop/availability", handler.HandleSetItemAvailability(shopService))
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
		pool:           pool,
		walletService:  walletService,
		shopService:    shopService,
		monsterService: monsterService,
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
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

		// Wrap response writer to capture status code
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
