package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"aqarboard/internal/config"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	cfg       *config.Config
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Runtime   map[string]interface{}   `json:"runtime,omitempty"`
	Datasets  map[string]DatasetHealth `json:"datasets,omitempty"`
}

// DatasetHealth reports whether one dataset file is readable.
type DatasetHealth struct {
	Status    string `json:"status"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
	Message   string `json:"message,omitempty"`
}

// NewHealthService creates a new health service
func NewHealthService(version string, cfg *config.Config, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("version", version),
		slog.String("data_dir", cfg.Paths.DataDir))

	return &HealthService{
		version:   version,
		cfg:       cfg,
		startTime: time.Now(),
		logger:    logger,
	}
}

// LivenessCheck reports that the process is up.
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// ReadinessCheck probes every dataset file concurrently. The dashboard is
// ready only when all three files are present and readable.
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   hs.version,
		Datasets:  make(map[string]DatasetHealth),
	}

	paths := hs.cfg.DatasetPaths()
	results := make([]DatasetHealth, len(paths))
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = hs.probeDataset(ctx, name, paths[name])
			return nil
		})
	}
	// Probes report through results and never return an error.
	_ = g.Wait()

	for i, name := range names {
		status.Datasets[name] = results[i]
		if results[i].Status != "ready" {
			status.Status = "not_ready"
		}
	}

	if status.Status != "ready" {
		hs.logger.WarnContext(ctx, "readiness check failed",
			slog.Any("datasets", status.Datasets))
	}
	return status
}

// HealthCheck returns overall health, currently identical to readiness.
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	status := hs.ReadinessCheck(ctx)
	if status.Status == "ready" {
		status.Status = "ok"
	}
	return status
}

// Version returns version and runtime information.
func (hs *HealthService) Version() map[string]interface{} {
	return map[string]interface{}{
		"version":      hs.version,
		"go_version":   runtime.Version(),
		"os":           runtime.GOOS,
		"arch":         runtime.GOARCH,
		"uptime":       time.Since(hs.startTime).Seconds(),
		"start_time":   hs.startTime.Format(time.RFC3339),
		"current_time": time.Now().Format(time.RFC3339),
	}
}

func (hs *HealthService) probeDataset(ctx context.Context, name, path string) DatasetHealth {
	if err := ctx.Err(); err != nil {
		return DatasetHealth{Status: "not_ready", Path: path, Message: err.Error()}
	}

	info, err := os.Stat(path)
	if err != nil {
		return DatasetHealth{
			Status:  "not_ready",
			Path:    path,
			Message: fmt.Sprintf("dataset %s: %v", name, err),
		}
	}
	if info.IsDir() {
		return DatasetHealth{
			Status:  "not_ready",
			Path:    path,
			Message: fmt.Sprintf("dataset %s: path is a directory", name),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return DatasetHealth{
			Status:  "not_ready",
			Path:    path,
			Message: fmt.Sprintf("dataset %s: %v", name, err),
		}
	}
	f.Close()

	return DatasetHealth{Status: "ready", Path: path, SizeBytes: info.Size()}
}
