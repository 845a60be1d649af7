package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/assetdesk/backend/cmd/api-server/internal/handler"
	"github.com/assetdesk/backend/cmd/api-server/internal/router"
	"github.com/assetdesk/backend/internal/config"
	"github.com/assetdesk/backend/internal/logger"
	"github.com/assetdesk/backend/internal/metrics"
	"github.com/assetdesk/backend/internal/service"
	"github.com/assetdesk/backend/internal/store"
	"github.com/gin-gonic/gin"
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

		// 服务层
		fx.Provide(
			service.NewOrganizationService,
			service.NewTeamService,
			service.NewPersonService,
			service.NewAssetService,
			service.NewLicenseService,
			service.NewInventoryService,
			service.NewConfigService,
			service.NewStatsService,
		),

		// 处理器层
		fx.Provide(
			handler.NewDatabaseHandler,
			handler.NewOrganizationHandler,
			handler.NewTeamHandler,
			handler.NewPersonHandler,
			handler.NewAssetHandler,
			handler.NewLicenseHandler,
			handler.NewInventoryHandler,
			handler.NewConfigHandler,
		),

		// HTTP路由器
		fx.Provide(
			router.SetupRouter,
		),

		// HTTP服务器
		fx.Invoke(runHTTPServer),
	)

	app.Run()
}

// runHTTPServer 启动HTTP服务器
func runHTTPServer(
	lifecycle fx.Lifecycle,
	log *zap.Logger,
	cfg *config.Config,
	router *gin.Engine,
) {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server",
				zap.Int("port", cfg.Server.Port),
				zap.String("store_backend", cfg.Store.Backend),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down API server")

			shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error("Failed to gracefully shutdown server", zap.Error(err))
				return err
			}

			log.Info("API server stopped")
			return nil
		},
	})
}
