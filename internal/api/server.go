// Package api exposes the HTTP JSON interface consumed by the admin portal,
// the owner dashboard and the public booking page.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"cleansuite/internal/cache"
	"cleansuite/internal/database"
	"cleansuite/internal/filestore"
)

// Options configures the HTTP server.
type Options struct {
	Port           int
	APIKey         string
	Slots          []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Cache is the slice of the read-through cache the API uses. A nil
// *cache.Cache satisfies it with no-ops.
type Cache interface {
	Get(ctx context.Context, key string, out any) bool
	Set(ctx context.Context, key string, v any)
	Invalidate(ctx context.Context, keys ...string)
}

// HTTPServer serves the JSON API.
type HTTPServer struct {
	server  *http.Server
	db      *database.DB
	files   *filestore.Store
	cache   Cache
	limiter *rateLimiter
	slots   []string
	apiKey  string
	log     zerolog.Logger
}

// NewHTTPServer wires the routes and middleware chain.
func NewHTTPServer(opts Options, db *database.DB, files *filestore.Store, c Cache, logger zerolog.Logger) *HTTPServer {
	if c == nil {
		c = (*cache.Cache)(nil)
	}
	s := &HTTPServer{
		db:     db,
		files:  files,
		cache:  c,
		slots:  opts.Slots,
		apiKey: opts.APIKey,
		log:    logger.With().Str("component", "api").Logger(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookings", s.handleBookings)
	mux.HandleFunc("/api/availability", s.handleAvailability)
	mux.HandleFunc("/api/services", s.handleServices)
	mux.HandleFunc("/api/staff", s.handleStaff)
	mux.HandleFunc("/api/tasks", s.handleTasks)
	mux.HandleFunc("/api/notifications", s.handleNotifications)
	mux.HandleFunc("/api/workers", s.handleWorkers)
	mux.HandleFunc("/api/analytics", s.handleAnalytics)
	mux.HandleFunc("/api/analytics/export", s.handleAnalyticsExport)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/migrate", s.handleMigrate)

	var handler http.Handler = mux
	handler = s.withAPIKey(handler)
	if opts.RateLimitRPS > 0 {
		s.limiter = newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
		handler = withRateLimit(s.limiter, handler)
	}
	handler = s.withAccessLog(handler)
	handler = withRequestID(handler)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Handler returns the root handler, used by tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until the listener fails or Shutdown is called.
func (s *HTTPServer) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the limiter's cleanup loop.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.Close()
	}
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
