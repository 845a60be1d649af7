package handler

import (
	"net/http"

	"github.com/assetdesk/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// OrganizationHandler 组织处理器
type OrganizationHandler struct {
	organizations *service.OrganizationService
}

// NewOrganizationHandler 创建OrganizationHandler实例
func NewOrganizationHandler(organizations *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizations: organizations}
}

// List 获取全部组织
func (h *OrganizationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.organizations.GetAll(c.Request.Context()))
}

// Get 按ID获取组织
func (h *OrganizationHandler) Get(c *gin.Context) {
	org := h.organizations.GetByID(c.Request.Context(), c.Param("id"))
	if org == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "organization_not_found"})
		return
	}
	c.JSON(http.StatusOK, org)
}

// Create 创建组织
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.organizations.Create(c.Request.Context(), req))
}

// Update 更新组织
func (h *OrganizationHandler) Update(c *gin.Context) {
	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.organizations.Update(c.Request.Context(), c.Param("id"), req)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete 删除组织
func (h *OrganizationHandler) Delete(c *gin.Context) {
	h.organizations.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
