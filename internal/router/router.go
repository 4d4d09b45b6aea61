package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"menuboard/internal/handler"
	"menuboard/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Config carries the routing surface that used to vary across the
// duplicated server entry points: one route prefix instead of several
// near-identical definitions, and an optional static bundle directory.
type Config struct {
	RoutePrefix string
	StaticDir   string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(menuHandler *handler.MenuHandler, cfg Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: Recovery -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	prefix := cfg.RoutePrefix
	if prefix == "" {
		prefix = "/api/menu"
	}

	r.Route(prefix, func(r chi.Router) {
		r.Get("/", menuHandler.List)
		r.Get("/{id}", menuHandler.GetPrice)
		r.Put("/{id}", menuHandler.UpdatePrice)
	})

	// Serve the client bundle when configured, with an index.html
	// fallback for non-API paths.
	if cfg.StaticDir != "" {
		r.NotFound(staticHandler(cfg.StaticDir, prefix, logger))
	}

	return r
}

// staticHandler serves files from dir and falls back to index.html for
// paths that do not name a file, so client-side routes resolve.
func staticHandler(dir, apiPrefix string, logger zerolog.Logger) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		requested := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		logger.Debug().Str("path", r.URL.Path).Msg("serving index fallback")
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
