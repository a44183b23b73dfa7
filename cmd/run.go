package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang-persistent-eth/internal/adapter/enumerate"
	"golang-persistent-eth/internal/adapter/infrastructure/file"
	infraNetlink "golang-persistent-eth/internal/adapter/infrastructure/netlink"
	"golang-persistent-eth/internal/adapter/rename"
	"golang-persistent-eth/internal/pkg/config"
	"golang-persistent-eth/internal/pkg/ifcfg"
	"golang-persistent-eth/internal/pkg/logging"
	"golang-persistent-eth/internal/port"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFlag string
)

// createRenameEngine wires the rename pipeline from its adapters.
func createRenameEngine(cfg *config.Config) port.InterfaceRenamer {
	linkCtl := infraNetlink.NewControllerAdapter()
	fileMgr := file.NewManagerAdapter()

	enumerator := enumerate.NewEnumerator(linkCtl, cfg.OperationTimeout())
	catalog := ifcfg.NewCatalog(cfg.Rename.ConfigDir, fileMgr)

	return rename.NewEngine(linkCtl, enumerator, catalog, cfg.Rename.TempPrefix, cfg.OperationTimeout())
}

// runPipeline loads configuration, runs the rename passes once and logs the
// summary. Shared by the run and install commands.
func runPipeline(ctx context.Context, cfg *config.Config) error {
	logger := logging.GetLogger()

	engine := createRenameEngine(cfg)
	summary, err := engine.Run(ctx)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"total":    summary.Total,
		"assigned": summary.Matched,
		"fallback": summary.Fallback,
		"failed":   summary.Failed,
	}).Info("Rename run complete")
	return nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Rename all interfaces once, per the ifcfg naming rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		logging.InitLogger(cfg.Logging)
		logger := logging.GetLogger()
		logger.WithField("config_dir", cfg.Rename.ConfigDir).Info("Starting rename run")

		// A oneshot run still honors termination signals so a stuck link
		// command cannot wedge the boot sequence past its timeout.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		return runPipeline(ctx, cfg)
	},
}

func init() {
	runCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML, optional)")
	rootCmd.AddCommand(runCmd)
}
