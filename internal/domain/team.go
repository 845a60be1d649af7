package domain

// TeamRecord 团队存储记录
type TeamRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	OrganizationID string `json:"organization_id"`
	ManagerID      string `json:"manager_id,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// Team 团队视图
//
// PeopleCount 为派生字段：团队中处于active状态的成员数，读取时计算
type Team struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	OrganizationID string `json:"organizationId"`
	PeopleCount    int    `json:"peopleCount"`
	CreatedAt      string `json:"createdAt"`
	ManagerID      string `json:"managerId,omitempty"`
}

// View 转换为视图
func (r *TeamRecord) View(peopleCount int) Team {
	return Team{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		OrganizationID: r.OrganizationID,
		PeopleCount:    peopleCount,
		CreatedAt:      r.CreatedAt,
		ManagerID:      r.ManagerID,
	}
}
