package main

import (
	"context"
	"fmt"

	"github.com/assetdesk/backend/cmd/backup-worker/internal/tasks"
	"github.com/assetdesk/backend/internal/config"
	"github.com/assetdesk/backend/internal/logger"
	"github.com/assetdesk/backend/internal/metrics"
	"github.com/assetdesk/backend/internal/notifier"
	"github.com/assetdesk/backend/internal/service"
	"github.com/assetdesk/backend/internal/store"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// 配置模块
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			metrics.New,
		),

		// 文档存储
		fx.Provide(
			store.NewDocumentStoreFromConfig,
		),

		// 服务与通知
		fx.Provide(
			service.NewLicenseService,
			notifier.NewEmailNotifier,
		),

		// 后台任务
		fx.Provide(
			tasks.NewSnapshotTask,
			tasks.NewLicenseExpiryTask,
		),

		// 启动备份工作器
		fx.Invoke(runBackupWorker),
	)

	app.Run()
}

// runBackupWorker 运行备份工作器
func runBackupWorker(
	lifecycle fx.Lifecycle,
	log *zap.Logger,
	cfg *config.Config,
	snapshotTask *tasks.SnapshotTask,
	licenseExpiryTask *tasks.LicenseExpiryTask,
) {
	ctx, cancel := context.WithCancel(context.Background())

	// 创建cron调度器
	c := cron.New()

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("Starting Backup Worker",
				zap.Duration("snapshot_interval", cfg.Backup.SnapshotInterval),
				zap.String("expiry_scan_cron", cfg.Backup.ExpiryScanCron),
			)

			// 定期快照
			if _, err := c.AddFunc(fmt.Sprintf("@every %s", cfg.Backup.SnapshotInterval), func() {
				if err := snapshotTask.Run(ctx); err != nil {
					log.Error("Snapshot task failed", zap.Error(err))
				}
			}); err != nil {
				return err
			}

			// 许可证到期扫描
			if _, err := c.AddFunc(cfg.Backup.ExpiryScanCron, func() {
				if err := licenseExpiryTask.Run(ctx); err != nil {
					log.Error("License expiry task failed", zap.Error(err))
				}
			}); err != nil {
				return err
			}

			// 启动调度器
			c.Start()

			log.Info("Backup worker started with scheduled tasks")

			return nil
		},
		OnStop: func(context.Context) error {
			log.Info("Shutting down Backup Worker")
			cancel()
			c.Stop()
			return nil
		},
	})
}
