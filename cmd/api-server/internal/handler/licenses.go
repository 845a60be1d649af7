package handler

import (
	"net/http"

	"github.com/assetdesk/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// LicenseHandler 许可证处理器
type LicenseHandler struct {
	licenses *service.LicenseService
}

// NewLicenseHandler 创建LicenseHandler实例
func NewLicenseHandler(licenses *service.LicenseService) *LicenseHandler {
	return &LicenseHandler{licenses: licenses}
}

// List 获取组织内全部许可证
func (h *LicenseHandler) List(c *gin.Context) {
	organizationID, ok := requireOrganizationID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.licenses.GetAll(c.Request.Context(), organizationID))
}

// Get 按ID获取许可证
func (h *LicenseHandler) Get(c *gin.Context) {
	license := h.licenses.GetByID(c.Request.Context(), c.Param("id"))
	if license == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "license_not_found"})
		return
	}
	c.JSON(http.StatusOK, license)
}

// Create 创建许可证
func (h *LicenseHandler) Create(c *gin.Context) {
	var req service.CreateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.licenses.Create(c.Request.Context(), req))
}

// Update 更新许可证
func (h *LicenseHandler) Update(c *gin.Context) {
	var req service.UpdateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.licenses.Update(c.Request.Context(), c.Param("id"), req)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete 删除许可证
func (h *LicenseHandler) Delete(c *gin.Context) {
	h.licenses.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// assignmentRequest 分配/回收请求体
type assignmentRequest struct {
	PersonID string `json:"personId" binding:"required"`
}

// Assign 将许可证分配给人员，重复分配或容量已满时无副作用
func (h *LicenseHandler) Assign(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.licenses.AssignToUser(c.Request.Context(), c.Param("id"), req.PersonID)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Unassign 从人员回收许可证
func (h *LicenseHandler) Unassign(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.licenses.UnassignFromUser(c.Request.Context(), c.Param("id"), req.PersonID)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// codeRequest 激活码请求体
type codeRequest struct {
	Code string `json:"code"`
}

// UpdateCode 更新共享激活码
func (h *LicenseHandler) UpdateCode(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.licenses.UpdateLicenseCode(c.Request.Context(), c.Param("id"), req.Code)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// UpdateIndividualCode 更新人员专属激活码，空白码表示删除
func (h *LicenseHandler) UpdateIndividualCode(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.licenses.UpdateIndividualCode(c.Request.Context(), c.Param("id"), c.Param("person_id"), req.Code)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
