package handler

import (
	"net/http"

	"github.com/assetdesk/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// InventoryHandler 库存处理器
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler 创建InventoryHandler实例
func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// List 获取组织内全部库存条目
func (h *InventoryHandler) List(c *gin.Context) {
	organizationID, ok := requireOrganizationID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.inventory.GetAll(c.Request.Context(), organizationID))
}

// Get 按ID获取库存条目
func (h *InventoryHandler) Get(c *gin.Context) {
	item := h.inventory.GetByID(c.Request.Context(), c.Param("id"))
	if item == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "inventory_item_not_found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create 创建库存条目
func (h *InventoryHandler) Create(c *gin.Context) {
	var req service.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.inventory.Create(c.Request.Context(), req))
}

// Update 更新库存条目
func (h *InventoryHandler) Update(c *gin.Context) {
	var req service.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.inventory.Update(c.Request.Context(), c.Param("id"), req)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete 删除库存条目
func (h *InventoryHandler) Delete(c *gin.Context) {
	h.inventory.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
