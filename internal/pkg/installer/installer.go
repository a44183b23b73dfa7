// Package installer installs the tool as a systemd oneshot unit ordered
// before network.target.
package installer

import (
	"context"
	"fmt"

	"golang-persistent-eth/internal/pkg/config"
	"golang-persistent-eth/internal/pkg/logging"
	"golang-persistent-eth/internal/port"
)

const unitTemplate = `[Unit]
Description=Persistently name interfaces to the ethN naming convention
Before=network.target

[Service]
Type=oneshot
ExecStart=%s run

[Install]
WantedBy=network.target
`

// Installer copies the binary into place, writes the service unit and
// registers it with systemd. Any failure aborts installation; nothing is
// rolled back.
type Installer struct {
	cfg        config.InstallConfig
	fileMgr    port.FileManager
	serviceMgr port.ServiceManager
}

// NewInstaller creates an installer with the given installation settings.
func NewInstaller(cfg config.InstallConfig, fileMgr port.FileManager, serviceMgr port.ServiceManager) *Installer {
	return &Installer{
		cfg:        cfg,
		fileMgr:    fileMgr,
		serviceMgr: serviceMgr,
	}
}

// Install copies sourceBinary to the configured system path, writes the
// unit file and runs daemon-reload plus enable.
func (i *Installer) Install(ctx context.Context, sourceBinary string) error {
	logger := logging.WithComponent("install")

	logger.WithFields(map[string]interface{}{
		"from": sourceBinary,
		"to":   i.cfg.BinaryPath,
	}).Info("Copying binary")
	if err := i.fileMgr.CopyFile(sourceBinary, i.cfg.BinaryPath, 0755); err != nil {
		return fmt.Errorf("failed to install binary: %w", err)
	}

	unit := fmt.Sprintf(unitTemplate, i.cfg.BinaryPath)
	logger.WithField("unit", i.cfg.UnitPath).Info("Writing service unit")
	if err := i.fileMgr.WriteFile(i.cfg.UnitPath, []byte(unit), 0644); err != nil {
		return fmt.Errorf("failed to write service unit: %w", err)
	}

	logger.Info("Reloading service manager configuration")
	if err := i.serviceMgr.DaemonReload(ctx); err != nil {
		return fmt.Errorf("failed to reload service manager: %w", err)
	}

	logger.WithField("unit", i.cfg.UnitName).Info("Enabling unit")
	if err := i.serviceMgr.EnableUnit(ctx, i.cfg.UnitName); err != nil {
		return fmt.Errorf("failed to enable unit: %w", err)
	}

	logger.Info("Installation complete")
	return nil
}
