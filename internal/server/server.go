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

	"github.com/getgifts/starcase/internal/cases"
	"github.com/getgifts/starcase/internal/craft"
	"github.com/getgifts/starcase/internal/database"
	"github.com/getgifts/starcase/internal/handler"
	"github.com/getgifts/starcase/internal/ledger"
	"github.com/getgifts/starcase/internal/logger"
	"github.com/getgifts/starcase/internal/metrics"
	"github.com/getgifts/starcase/internal/pvp"
	"github.com/getgifts/starcase/internal/upgrade"
	"github.com/getgifts/starcase/internal/wallet"
)

// Services bundles everything the router needs
type Services struct {
	Ledger  ledger.Service
	Wallet  wallet.Service
	Cases   cases.Service
	Upgrade upgrade.Service
	Craft   craft.Service
	PvP     pvp.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance with the full middleware stack and
// route tree
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		ledgerHandler := handler.NewLedgerHandler(svcs.Ledger)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", ledgerHandler.HandleRegister)
			r.Get("/profile", ledgerHandler.HandleGetProfile)
			r.Get("/inventory", ledgerHandler.HandleGetInventory)
			r.Post("/sell", ledgerHandler.HandleSellItems)
			r.Post("/sell-all", ledgerHandler.HandleSellAll)
		})
		r.Post("/promo/redeem", ledgerHandler.HandleRedeemPromo)

		walletHandler := handler.NewWalletHandler(svcs.Wallet)
		r.Post("/wallet/topup", walletHandler.HandleTopUp)

		casesHandler := handler.NewCasesHandler(svcs.Cases)
		r.Route("/cases", func(r chi.Router) {
			r.Get("/", casesHandler.HandleListCases)
			r.Post("/open", casesHandler.HandleOpenCase)
		})

		upgradeHandler := handler.NewUpgradeHandler(svcs.Upgrade)
		r.Route("/upgrade", func(r chi.Router) {
			r.Get("/targets", upgradeHandler.HandleTargets)
			r.Post("/", upgradeHandler.HandleResolve)
		})

		craftHandler := handler.NewCraftHandler(svcs.Craft)
		r.Post("/craft", craftHandler.HandleCraft)

		pvpHandler := handler.NewPvPHandler(svcs.PvP)
		r.Route("/pvp", func(r chi.Router) {
			r.Post("/join", pvpHandler.HandleJoin)
			r.Post("/spin", pvpHandler.HandleSpin)
			r.Get("/match", pvpHandler.HandleGetMatch)
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
		dbPool: dbPool,
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

		// Health and metrics probes are noise at info level
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
		log.Info("Request started",
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
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
