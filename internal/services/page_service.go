package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"aqarboard/internal/config"
	"aqarboard/internal/dataset"
	apierrors "aqarboard/internal/errors"
	"aqarboard/internal/pages"
)

// ErrUnknownDataset is returned when a download names a dataset the
// dashboard does not serve.
var ErrUnknownDataset = errors.New("unknown dataset")

// PageService builds dashboard pages on demand. It implements pages.Store,
// so every page build reads its dataset files fresh from disk.
type PageService struct {
	cfg      *config.Config
	registry *pages.Registry
	logger   *slog.Logger
}

// NewPageService creates a page service over the configured dataset paths.
func NewPageService(cfg *config.Config, logger *slog.Logger) *PageService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("PageService initialized with dataset paths",
		slog.String("listings", cfg.ListingsPath()),
		slog.String("deployment", cfg.DeploymentPath()),
		slog.String("train", cfg.TrainPath()))

	return &PageService{
		cfg:      cfg,
		registry: pages.NewRegistry(),
		logger:   logger,
	}
}

// List returns the navigation entries in sidebar order.
func (ps *PageService) List() []pages.Info {
	return ps.registry.List()
}

// Get builds the named page. Exactly one view builder runs per call and
// any dataset it needs is re-read from disk.
func (ps *PageService) Get(ctx context.Context, name string) (*pages.Page, error) {
	start := time.Now()

	page, err := ps.registry.Build(ctx, ps, name)
	if err != nil {
		ps.logger.WarnContext(ctx, "page build failed",
			slog.String("page", name),
			slog.String("error", err.Error()))
		return nil, err
	}

	ps.logger.InfoContext(ctx, "page built",
		slog.String("page", name),
		slog.Duration("duration", time.Since(start)))
	return page, nil
}

// Table loads the named dataset for download. Names match the keys of
// config.DatasetPaths.
func (ps *PageService) Table(ctx context.Context, name string) (*dataset.Table, error) {
	path, ok := ps.cfg.DatasetPaths()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return ps.load(ctx, name, path)
}

// Listings implements pages.Store.
func (ps *PageService) Listings(ctx context.Context) (*dataset.Table, error) {
	return ps.load(ctx, "listings", ps.cfg.ListingsPath())
}

// Deployment implements pages.Store.
func (ps *PageService) Deployment(ctx context.Context) (*dataset.Table, error) {
	return ps.load(ctx, "deployment", ps.cfg.DeploymentPath())
}

// Train implements pages.Store.
func (ps *PageService) Train(ctx context.Context) (*dataset.Table, error) {
	return ps.load(ctx, "train", ps.cfg.TrainPath())
}

func (ps *PageService) load(ctx context.Context, name, path string) (*dataset.Table, error) {
	start := time.Now()

	table, err := dataset.Load(ctx, path)
	if err != nil {
		ps.logger.ErrorContext(ctx, "dataset load failed",
			slog.String("dataset", name),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, apierrors.FileSystemError("load "+name+" dataset", err)
	}
	table.Name = name

	ps.logger.DebugContext(ctx, "dataset loaded",
		slog.String("dataset", name),
		slog.String("path", path),
		slog.Int("rows", table.RowCount()),
		slog.Duration("duration", time.Since(start)))
	return table, nil
}
