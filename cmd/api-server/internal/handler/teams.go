package handler

import (
	"net/http"

	"github.com/assetdesk/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// TeamHandler 团队处理器
type TeamHandler struct {
	teams *service.TeamService
}

// NewTeamHandler 创建TeamHandler实例
func NewTeamHandler(teams *service.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// List 获取组织内全部团队
func (h *TeamHandler) List(c *gin.Context) {
	organizationID, ok := requireOrganizationID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.teams.GetAll(c.Request.Context(), organizationID))
}

// Get 按ID获取团队
func (h *TeamHandler) Get(c *gin.Context) {
	team := h.teams.GetByID(c.Request.Context(), c.Param("id"))
	if team == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "team_not_found"})
		return
	}
	c.JSON(http.StatusOK, team)
}

// Create 创建团队
func (h *TeamHandler) Create(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.teams.Create(c.Request.Context(), req))
}

// Update 更新团队
func (h *TeamHandler) Update(c *gin.Context) {
	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	h.teams.Update(c.Request.Context(), c.Param("id"), req)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete 删除团队，成员的团队引用被清除
func (h *TeamHandler) Delete(c *gin.Context) {
	h.teams.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Members 获取团队active成员
func (h *TeamHandler) Members(c *gin.Context) {
	c.JSON(http.StatusOK, h.teams.GetTeamMembers(c.Request.Context(), c.Param("id")))
}

// AddMember 将人员加入团队
func (h *TeamHandler) AddMember(c *gin.Context) {
	h.teams.AddPersonToTeam(c.Request.Context(), c.Param("id"), c.Param("person_id"))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// RemoveMember 将人员移出所在团队
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	h.teams.RemovePersonFromTeam(c.Request.Context(), c.Param("person_id"))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
