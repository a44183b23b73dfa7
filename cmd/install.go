package cmd

import (
	"context"
	"fmt"
	"os"

	"golang-persistent-eth/internal/adapter/infrastructure/file"
	"golang-persistent-eth/internal/adapter/infrastructure/systemd"
	"golang-persistent-eth/internal/pkg/config"
	"golang-persistent-eth/internal/pkg/installer"
	"golang-persistent-eth/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install as a systemd unit that runs before network.target, then rename once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		logging.InitLogger(cfg.Logging)

		sourceBinary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate own binary: %w", err)
		}

		ctx := context.Background()

		inst := installer.NewInstaller(cfg.Install, file.NewManagerAdapter(), systemd.NewManagerAdapter())
		if err := inst.Install(ctx, sourceBinary); err != nil {
			return err
		}

		// Installation succeeded; apply the naming scheme immediately so the
		// administrator does not have to wait for the next boot.
		return runPipeline(ctx, cfg)
	},
}

func init() {
	installCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML, optional)")
	rootCmd.AddCommand(installCmd)
}
