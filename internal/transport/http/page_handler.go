package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "aqarboard/internal/errors"
	"aqarboard/internal/pages"
)

// PageHandler serves the navigation list and the rendered pages.
type PageHandler struct {
	service      PageServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewPageHandler creates a new page handler
func NewPageHandler(service PageServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *PageHandler {
	return &PageHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "pages")),
		errorHandler: errorHandler,
	}
}

// Routes returns the page routes
func (h *PageHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListPages)
	r.Get("/{name}", h.GetPage)

	return r
}

// ListPages handles GET /api/pages
func (h *PageHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"pages": h.service.List(),
	})
}

// GetPage handles GET /api/pages/{name}. Exactly one view builds per
// request, reading its datasets fresh from disk.
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	page, err := h.service.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, pages.ErrUnknownPage) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPageNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "page build failed",
			slog.String("page", name),
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, page)
}
