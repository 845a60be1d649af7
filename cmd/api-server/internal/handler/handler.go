package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse 成功响应
type SuccessResponse struct {
	Success bool `json:"success"`
}

// requireOrganizationID 提取organization_id查询参数，缺失时返回400
func requireOrganizationID(c *gin.Context) (string, bool) {
	organizationID := c.Query("organization_id")
	if organizationID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_organization_id",
			Message: "organization_id query parameter is required",
		})
		return "", false
	}
	return organizationID, true
}
