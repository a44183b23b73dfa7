// Package systemd provides the service manager adapter implementation.
package systemd

import (
	"context"
	"fmt"
	"os/exec"

	"golang-persistent-eth/internal/port"
)

// ManagerAdapter is an adapter that implements the ServiceManager port by
// shelling out to systemctl.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the ServiceManager port
var _ port.ServiceManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new service manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// DaemonReload reloads the systemd manager configuration.
func (s *ManagerAdapter) DaemonReload(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "systemctl", "daemon-reload").CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to run systemctl daemon-reload: %w (output: %s)", err, out)
	}
	return nil
}

// EnableUnit enables the named unit so it runs at boot.
func (s *ManagerAdapter) EnableUnit(ctx context.Context, unit string) error {
	out, err := exec.CommandContext(ctx, "systemctl", "enable", unit).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to run systemctl enable %s: %w (output: %s)", unit, err, out)
	}
	return nil
}
