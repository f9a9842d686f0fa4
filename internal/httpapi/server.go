package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/tools"
)

// Server exposes the tool registry over HTTP
type Server struct {
	cfg      *config.Config
	registry *tools.Registry
	logger   *zap.Logger
	limiter  *rateLimiter
}

// NewServer builds the HTTP front of registry. Call Close when done.
func NewServer(cfg *config.Config, registry *tools.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		registry: registry,
		logger:   logger,
		limiter:  newRateLimiter(cfg.RateLimit, cfg.RateBurst, 10*time.Minute),
	}
}

// Routes builds the handler tree
func (s *Server) Routes() http.Handler {
	standardMiddleware := alice.New(s.recoverPanic, s.logRequest, secureHeaders)
	writeMiddleware := alice.New(s.rateLimit)

	r := mux.NewRouter()
	r.Use(s.instrument)
	r.Handle("/healthz", http.HandlerFunc(s.healthz)).Methods("GET")
	r.Handle("/tools", http.HandlerFunc(s.listTools)).Methods("GET")
	r.Handle("/tools/{name}", writeMiddleware.ThenFunc(s.callTool)).Methods("POST")
	r.Handle("/proofs/{field}", writeMiddleware.ThenFunc(s.uploadProof)).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedOrigins([]string{"*"}),
	)
	return standardMiddleware.Then(cors(r))
}

// Close stops background work owned by the server
func (s *Server) Close() {
	s.limiter.stop()
}
