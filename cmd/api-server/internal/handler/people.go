package handler

import (
	"net/http"

	"github.com/assetdesk/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// PersonHandler 人员处理器
type PersonHandler struct {
	people *service.PersonService
}

// NewPersonHandler 创建PersonHandler实例
func NewPersonHandler(people *service.PersonService) *PersonHandler {
	return &PersonHandler{people: people}
}

// List 获取组织内全部人员
func (h *PersonHandler) List(c *gin.Context) {
	organizationID, ok := requireOrganizationID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.people.GetAll(c.Request.Context(), organizationID))
}

// Get 按ID获取人员
func (h *PersonHandler) Get(c *gin.Context) {
	person := h.people.GetByID(c.Request.Context(), c.Param("id"))
	if person == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "person_not_found"})
		return
	}
	c.JSON(http.StatusOK, person)
}

// Create 创建人员
func (h *PersonHandler) Create(c *gin.Context) {
	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.people.Create(c.Request.Context(), req))
}

// Update 更新人员
func (h *PersonHandler) Update(c *gin.Context) {
	var req service.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.people.Update(c.Request.Context(), c.Param("id"), req)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete 删除人员
func (h *PersonHandler) Delete(c *gin.Context) {
	h.people.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Hierarchy 获取组织的汇报层级树
func (h *PersonHandler) Hierarchy(c *gin.Context) {
	organizationID, ok := requireOrganizationID(c)
	if !ok {
		return
	}
	roots, cycles := h.people.Hierarchy(c.Request.Context(), organizationID)
	c.JSON(http.StatusOK, gin.H{
		"roots":  roots,
		"cycles": cycles,
	})
}

// Costs 获取人员月度成本汇总
func (h *PersonHandler) Costs(c *gin.Context) {
	costs := h.people.Costs(c.Request.Context(), c.Param("id"))
	if costs == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "person_not_found"})
		return
	}
	c.JSON(http.StatusOK, costs)
}
