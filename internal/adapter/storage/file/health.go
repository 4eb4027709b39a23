package file

import (
	"context"
	"os"
	"path/filepath"
)

// HealthCheck implements ports.HealthChecker for the state directory.
type HealthCheck struct {
	dir string
}

// NewHealthCheck creates a state-directory health checker.
func NewHealthCheck(dir string) *HealthCheck {
	return &HealthCheck{dir: dir}
}

// Ping verifies the state directory is writable.
func (h *HealthCheck) Ping(_ context.Context) error {
	probe := filepath.Join(h.dir, ".health")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		return err
	}
	return os.Remove(probe)
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "state-dir"
}
