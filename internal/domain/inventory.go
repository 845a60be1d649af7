package domain

// InventoryRecord 库存存储记录
type InventoryRecord struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	Supplier       string  `json:"supplier,omitempty"`
	Location       string  `json:"location,omitempty"`
	OrganizationID string  `json:"organization_id"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// InventoryItem 库存视图
//
// TotalValue 为派生字段：quantity * unitPrice，读取时计算
type InventoryItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	TotalValue     float64 `json:"totalValue"`
	Supplier       string  `json:"supplier,omitempty"`
	Location       string  `json:"location,omitempty"`
	OrganizationID string  `json:"organizationId"`
}

// View 转换为视图
func (r *InventoryRecord) View() InventoryItem {
	return InventoryItem{
		ID:             r.ID,
		Name:           r.Name,
		Category:       r.Category,
		Quantity:       r.Quantity,
		UnitPrice:      r.UnitPrice,
		TotalValue:     float64(r.Quantity) * r.UnitPrice,
		Supplier:       r.Supplier,
		Location:       r.Location,
		OrganizationID: r.OrganizationID,
	}
}
