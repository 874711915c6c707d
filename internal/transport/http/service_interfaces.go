package http

import (
	"context"

	"aqarboard/internal/dataset"
	"aqarboard/internal/pages"
	"aqarboard/internal/services"
)

// PageServiceInterface defines the page operations the handlers depend on.
// Mirrored here so handler tests can substitute fakes.
type PageServiceInterface interface {
	List() []pages.Info
	Get(ctx context.Context, name string) (*pages.Page, error)
	Table(ctx context.Context, name string) (*dataset.Table, error)
}

// HealthServiceInterface defines the health operations the handlers use.
type HealthServiceInterface interface {
	HealthCheck(ctx context.Context) services.HealthStatus
	ReadinessCheck(ctx context.Context) services.HealthStatus
	LivenessCheck(ctx context.Context) services.HealthStatus
	Version() map[string]interface{}
}
