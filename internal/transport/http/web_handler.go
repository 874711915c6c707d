package http

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
)

// WebHandler serves the embedded single page frontend.
type WebHandler struct {
	frontend fs.FS
	logger   *slog.Logger
}

// NewWebHandler creates a handler over the embedded frontend filesystem.
// A nil filesystem serves a plain placeholder so the API stays usable.
func NewWebHandler(frontend fs.FS, logger *slog.Logger) *WebHandler {
	return &WebHandler{
		frontend: frontend,
		logger:   logger.With(slog.String("handler", "web")),
	}
}

// ServeHTTP serves static assets and falls back to index.html for any
// path without an extension so client side navigation keeps working.
func (h *WebHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.frontend == nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("aqarboard API is running; frontend not embedded in this build\n"))
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" || !strings.Contains(path, ".") {
		path = "index.html"
	}

	data, err := fs.ReadFile(h.frontend, path)
	if err != nil {
		h.logger.DebugContext(r.Context(), "frontend asset not found",
			slog.String("path", path))
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(path))
	w.Write(data)
}

func contentTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".html"):
		return "text/html; charset=utf-8"
	case strings.HasSuffix(path, ".css"):
		return "text/css; charset=utf-8"
	case strings.HasSuffix(path, ".js"):
		return "application/javascript; charset=utf-8"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".ico"):
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
