package domain

// AssetType 资产类型
type AssetType string

const (
	AssetTypeNotebook AssetType = "notebook"
	AssetTypeMonitor  AssetType = "monitor"
	AssetTypeAdapter  AssetType = "adapter"
	AssetTypeOther    AssetType = "other"
)

// AssetStatus 资产状态
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
)

// AssetCondition 资产成色
type AssetCondition string

const (
	AssetConditionNew  AssetCondition = "new"
	AssetConditionGood AssetCondition = "good"
	AssetConditionFair AssetCondition = "fair"
	AssetConditionPoor AssetCondition = "poor"
)

// AssetRecord 资产存储记录
type AssetRecord struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           AssetType      `json:"type"`
	SerialNumber   string         `json:"serial_number"`
	Value          float64        `json:"value"`
	PurchaseDate   string         `json:"purchase_date"`
	Status         AssetStatus    `json:"status"`
	Condition      AssetCondition `json:"condition"`
	AssignedTo     string         `json:"assigned_to,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	OrganizationID string         `json:"organization_id"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

// Asset 资产视图
//
// AssignedToName 为联查字段；assigned_to 指向不存在人员时视为未分配
type Asset struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           AssetType      `json:"type"`
	SerialNumber   string         `json:"serialNumber"`
	Value          float64        `json:"value"`
	PurchaseDate   string         `json:"purchaseDate"`
	Status         AssetStatus    `json:"status"`
	Condition      AssetCondition `json:"condition"`
	AssignedTo     string         `json:"assignedTo,omitempty"`
	AssignedToName string         `json:"assignedToName,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	OrganizationID string         `json:"organizationId"`
}

// View 转换为视图
func (r *AssetRecord) View(assignedToName string) Asset {
	return Asset{
		ID:             r.ID,
		Name:           r.Name,
		Type:           r.Type,
		SerialNumber:   r.SerialNumber,
		Value:          r.Value,
		PurchaseDate:   r.PurchaseDate,
		Status:         r.Status,
		Condition:      r.Condition,
		AssignedTo:     r.AssignedTo,
		AssignedToName: assignedToName,
		Notes:          r.Notes,
		OrganizationID: r.OrganizationID,
	}
}
