package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getcomicd/comicd/internal/storage"
	"github.com/getcomicd/comicd/pkg/logging"
)

// API exposes the catalog store over HTTP.
type API struct {
	store      storage.CatalogStore
	httpServer *http.Server
	port       int
	startTime  time.Time
	log        *slog.Logger
	corsConfig CORSConfig
	version    string

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// Option configures the API.
type Option func(*API)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithCORSConfig overrides the CORS configuration.
func WithCORSConfig(cfg CORSConfig) Option {
	return func(a *API) { a.corsConfig = cfg }
}

// WithVersion sets the version string reported by /status.
func WithVersion(v string) Option {
	return func(a *API) { a.version = v }
}

// WithTimeouts overrides the server read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(a *API) {
		a.readTimeout = read
		a.writeTimeout = write
	}
}

// New creates an API serving the given store on the given port.
func New(port int, store storage.CatalogStore, opts ...Option) *API {
	a := &API{
		store:        store,
		port:         port,
		log:          logging.Nop(),
		readTimeout:  30 * time.Second,
		writeTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(a)
	}

	if len(a.corsConfig.AllowedOrigins) == 0 && len(a.corsConfig.AllowedMethods) == 0 {
		a.corsConfig = DefaultCORSConfig()
	}

	mux := http.NewServeMux()
	a.registerRoutes(mux)

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      a.withMiddleware(mux),
		ReadTimeout:  a.readTimeout,
		WriteTimeout: a.writeTimeout,
	}

	return a
}

// withMiddleware wraps the mux with the full middleware chain.
// Order (outermost to innermost): security headers -> CORS -> request
// logging -> panic recovery -> handler.
func (a *API) withMiddleware(handler http.Handler) http.Handler {
	h := a.recoverMiddleware(handler)
	h = a.loggingMiddleware(h)
	h = a.corsMiddleware(h)
	return securityHeadersMiddleware(h)
}

// Handler returns the fully wrapped handler, mainly for tests.
func (a *API) Handler() http.Handler {
	return a.httpServer.Handler
}

// Start starts the HTTP server in the background.
func (a *API) Start() error {
	a.startTime = time.Now()
	a.log.Info("starting comicd API", "port", a.port)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("comicd API error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (a *API) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.httpServer.Shutdown(ctx)
}

// Uptime returns the API uptime in seconds.
func (a *API) Uptime() int {
	return int(time.Since(a.startTime).Seconds())
}
