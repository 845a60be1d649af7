package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/assetdesk/backend/internal/service"
	"github.com/assetdesk/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// ConfigHandler 数据导入导出与备份处理器
type ConfigHandler struct {
	config *service.ConfigService
	stats  *service.StatsService
}

// NewConfigHandler 创建ConfigHandler实例
func NewConfigHandler(config *service.ConfigService, stats *service.StatsService) *ConfigHandler {
	return &ConfigHandler{config: config, stats: stats}
}

// Export 导出全量数据
func (h *ConfigHandler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, h.config.Export(c.Request.Context()))
}

// Import 导入全量数据，校验失败时不做任何修改
func (h *ConfigHandler) Import(c *gin.Context) {
	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if err := h.config.Import(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "import_failed", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// RestoreBackup 从快照恢复数据
func (h *ConfigHandler) RestoreBackup(c *gin.Context) {
	if err := h.config.RestoreBackup(c.Request.Context()); err != nil {
		if errors.Is(err, store.ErrNoBackup) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no_backup_available"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "restore_failed", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ClearAllData 清空全部集合
func (h *ConfigHandler) ClearAllData(c *gin.Context) {
	if err := h.config.ClearAllData(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "clear_failed", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Dashboard 获取组织的统计概览
func (h *ConfigHandler) Dashboard(c *gin.Context) {
	organizationID, ok := requireOrganizationID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.stats.GetDashboard(c.Request.Context(), organizationID))
}
