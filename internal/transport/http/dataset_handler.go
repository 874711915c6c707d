package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "aqarboard/internal/errors"
	"aqarboard/internal/exporter"
	"aqarboard/internal/services"
)

// DatasetHandler serves dataset downloads in CSV or XLSX form.
type DatasetHandler struct {
	service      PageServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service PageServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DatasetHandler {
	return &DatasetHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "datasets")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dataset routes
func (h *DatasetHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{name}/download", h.Download)

	return r
}

// Download handles GET /api/datasets/{name}/download?format=csv|xlsx.
// The table is re-read from disk so downloads always match the files.
func (h *DatasetHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	format, err := exporter.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("format", err.Error()))
		return
	}

	table, err := h.service.Table(r.Context(), name)
	if err != nil {
		if errors.Is(err, services.ErrUnknownDataset) {
			h.errorHandler.HandleError(w, r, apierrors.ErrDatasetNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "dataset load failed",
			slog.String("dataset", name),
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	filename := name + "." + format.Extension()
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := exporter.Write(w, table, format, exporter.Options{BOMPrefix: true}); err != nil {
		// Headers are already sent, all we can do is log.
		h.logger.ErrorContext(r.Context(), "dataset export failed",
			slog.String("dataset", name),
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
	}
}
