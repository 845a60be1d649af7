package domain

// PersonStatus 人员状态
type PersonStatus string

const (
	PersonStatusActive   PersonStatus = "active"
	PersonStatusInactive PersonStatus = "inactive"
)

// PersonRecord 人员存储记录
type PersonRecord struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Position       string       `json:"position"`
	Status         PersonStatus `json:"status"`
	OrganizationID string       `json:"organization_id"`
	TeamID         string       `json:"team_id,omitempty"`
	ManagerID      string       `json:"manager_id,omitempty"`
	Subordinates   []string     `json:"subordinates,omitempty"`
	ExitDate       string       `json:"exit_date,omitempty"`
	CreatedAt      string       `json:"created_at"`
	UpdatedAt      string       `json:"updated_at"`
}

// Person 人员视图
//
// TeamName、Licenses、Assets 为联查出的展示字段；EntryDate 即记录创建时间
type Person struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Position       string       `json:"position"`
	Status         PersonStatus `json:"status"`
	OrganizationID string       `json:"organizationId"`
	TeamID         string       `json:"teamId"`
	TeamName       string       `json:"teamName"`
	EntryDate      string       `json:"entryDate"`
	ExitDate       string       `json:"exitDate,omitempty"`
	ManagerID      string       `json:"managerId,omitempty"`
	Subordinates   []string     `json:"subordinates"`
	Licenses       []License    `json:"licenses"`
	Assets         []Asset      `json:"assets"`
}

// PersonCosts 人员成本汇总（派生视图，读取时计算）
//
// LicenseCost 为各许可证人均成本之和：cost / max(usedQuantity, 1)
type PersonCosts struct {
	LicenseCost float64 `json:"licenseCost"`
	AssetsCost  float64 `json:"assetsCost"`
	TotalCost   float64 `json:"totalCost"`
	AssetsCount int     `json:"assetsCount"`
}

// PersonNode 组织架构树节点
type PersonNode struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Position     string        `json:"position"`
	Status       PersonStatus  `json:"status"`
	TeamID       string        `json:"teamId"`
	TeamName     string        `json:"teamName"`
	ManagerID    string        `json:"managerId,omitempty"`
	Level        int           `json:"level"`
	Subordinates []*PersonNode `json:"subordinates"`
}
