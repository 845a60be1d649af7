package router

import (
	"github.com/assetdesk/backend/cmd/api-server/internal/handler"
	"github.com/assetdesk/backend/cmd/api-server/internal/middleware"
	"github.com/assetdesk/backend/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 配置API服务器路由
func SetupRouter(
	databaseHandler *handler.DatabaseHandler,
	organizationHandler *handler.OrganizationHandler,
	teamHandler *handler.TeamHandler,
	personHandler *handler.PersonHandler,
	assetHandler *handler.AssetHandler,
	licenseHandler *handler.LicenseHandler,
	inventoryHandler *handler.InventoryHandler,
	configHandler *handler.ConfigHandler,
	m *metrics.Metrics,
) *gin.Engine {
	// 创建Gin引擎
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(middleware.ValidationMiddleware(middleware.NewValidationConfig()))
	r.Use(middleware.MetricsMiddleware(m))

	// 健康检查端点
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 整库读写端点，供桌面客户端直接同步文档
	r.GET("/api/database", databaseHandler.GetDatabase)
	r.POST("/api/database", databaseHandler.SaveDatabase)

	// API v1路由组
	v1 := r.Group("/api/v1")
	{
		// 组织管理
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.List)
			organizations.GET("/:id", organizationHandler.Get)
			organizations.POST("", organizationHandler.Create)
			organizations.PUT("/:id", organizationHandler.Update)
			organizations.DELETE("/:id", organizationHandler.Delete)
		}

		// 团队管理
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.List)
			teams.GET("/:id", teamHandler.Get)
			teams.POST("", teamHandler.Create)
			teams.PUT("/:id", teamHandler.Update)
			teams.DELETE("/:id", teamHandler.Delete)

			// 成员管理
			teams.GET("/:id/members", teamHandler.Members)
			teams.POST("/:id/members/:person_id", teamHandler.AddMember)
			teams.DELETE("/members/:person_id", teamHandler.RemoveMember)
		}

		// 人员管理
		people := v1.Group("/people")
		{
			people.GET("", personHandler.List)
			people.GET("/hierarchy", personHandler.Hierarchy)
			people.GET("/:id", personHandler.Get)
			people.GET("/:id/costs", personHandler.Costs)
			people.POST("", personHandler.Create)
			people.PUT("/:id", personHandler.Update)
			people.DELETE("/:id", personHandler.Delete)
		}

		// 资产管理
		assets := v1.Group("/assets")
		{
			assets.GET("", assetHandler.List)
			assets.GET("/:id", assetHandler.Get)
			assets.POST("", assetHandler.Create)
			assets.PUT("/:id", assetHandler.Update)
			assets.DELETE("/:id", assetHandler.Delete)
		}

		// 许可证管理
		licenses := v1.Group("/licenses")
		{
			licenses.GET("", licenseHandler.List)
			licenses.GET("/:id", licenseHandler.Get)
			licenses.POST("", licenseHandler.Create)
			licenses.PUT("/:id", licenseHandler.Update)
			licenses.DELETE("/:id", licenseHandler.Delete)

			// 分配与激活码
			licenses.POST("/:id/assign", licenseHandler.Assign)
			licenses.POST("/:id/unassign", licenseHandler.Unassign)
			licenses.PUT("/:id/code", licenseHandler.UpdateCode)
			licenses.PUT("/:id/codes/:person_id", licenseHandler.UpdateIndividualCode)
		}

		// 库存管理
		inventory := v1.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.List)
			inventory.GET("/:id", inventoryHandler.Get)
			inventory.POST("", inventoryHandler.Create)
			inventory.PUT("/:id", inventoryHandler.Update)
			inventory.DELETE("/:id", inventoryHandler.Delete)
		}

		// 数据管理
		config := v1.Group("/config")
		{
			config.GET("/export", configHandler.Export)
			config.POST("/import", configHandler.Import)
			config.POST("/restore-backup", configHandler.RestoreBackup)
			config.POST("/clear", configHandler.ClearAllData)
		}

		// 统计概览
		v1.GET("/dashboard", configHandler.Dashboard)
	}

	return r
}
