package domain

// OrganizationRecord 组织存储记录
type OrganizationRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Organization 组织视图
type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// View 转换为视图
func (r *OrganizationRecord) View() Organization {
	return Organization{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Logo:        r.Logo,
		CreatedAt:   r.CreatedAt,
	}
}
