package handler

import (
	"net/http"

	"github.com/assetdesk/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AssetHandler 资产处理器
type AssetHandler struct {
	assets *service.AssetService
}

// NewAssetHandler 创建AssetHandler实例
func NewAssetHandler(assets *service.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

// List 获取组织内全部资产
func (h *AssetHandler) List(c *gin.Context) {
	organizationID, ok := requireOrganizationID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.assets.GetAll(c.Request.Context(), organizationID))
}

// Get 按ID获取资产
func (h *AssetHandler) Get(c *gin.Context) {
	asset := h.assets.GetByID(c.Request.Context(), c.Param("id"))
	if asset == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "asset_not_found"})
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Create 创建资产
func (h *AssetHandler) Create(c *gin.Context) {
	var req service.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.assets.Create(c.Request.Context(), req))
}

// Update 更新资产
func (h *AssetHandler) Update(c *gin.Context) {
	var req service.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.assets.Update(c.Request.Context(), c.Param("id"), req)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete 删除资产
func (h *AssetHandler) Delete(c *gin.Context) {
	h.assets.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
