package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/eucorp/planning/config"
)

func TestNewServicesNilDeps(t *testing.T) {
	container := NewServices(nil)

	if container.Classifications != nil || container.Goals != nil || container.Auth != nil {
		t.Fatalf("expected empty container for nil deps, got %+v", container)
	}
}

func TestBuildObservabilityDisabledMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container := buildObservability(logger, config.ObservabilityConfig{})

	if container.MetricsSink != nil {
		t.Fatalf("expected nil metrics sink when metrics are disabled, got %v", container.MetricsSink)
	}
}

func TestBuildDomainServicesNilOptions(t *testing.T) {
	container := buildDomainServices(nil)

	if container.Monitoring != nil {
		t.Fatal("expected empty container for nil options")
	}
}
