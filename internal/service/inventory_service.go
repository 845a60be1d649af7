package service

import (
	"context"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService 库存服务
type InventoryService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewInventoryService 创建库存服务实例
func NewInventoryService(docStore *store.DocumentStore, logger *zap.Logger) *InventoryService {
	return &InventoryService{store: docStore, logger: logger}
}

// CreateInventoryItemRequest 创建库存条目请求
type CreateInventoryItemRequest struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	Supplier       string  `json:"supplier"`
	Location       string  `json:"location"`
	OrganizationID string  `json:"organizationId"`
}

// UpdateInventoryItemRequest 更新库存条目请求（仅更新出现的字段）
type UpdateInventoryItemRequest struct {
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice"`
	Supplier  *string  `json:"supplier"`
	Location  *string  `json:"location"`
}

// GetAll 获取组织内全部库存条目，按名称升序
func (s *InventoryService) GetAll(ctx context.Context, organizationID string) []domain.InventoryItem {
	records := store.Records[domain.InventoryRecord](ctx, s.store, domain.CollectionInventory)

	views := make([]domain.InventoryItem, 0, len(records))
	for i := range records {
		if records[i].OrganizationID == organizationID {
			views = append(views, records[i].View())
		}
	}
	sortByName(views, func(item domain.InventoryItem) string { return item.Name })
	return views
}

// GetByID 按ID获取库存条目，未找到返回nil
func (s *InventoryService) GetByID(ctx context.Context, id string) *domain.InventoryItem {
	records := store.Records[domain.InventoryRecord](ctx, s.store, domain.CollectionInventory)

	for i := range records {
		if records[i].ID == id {
			view := records[i].View()
			return &view
		}
	}
	return nil
}

// Create 创建库存条目
func (s *InventoryService) Create(ctx context.Context, req CreateInventoryItemRequest) domain.InventoryItem {
	now := time.Now().UTC().Format(time.RFC3339)
	record := domain.InventoryRecord{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Category:       req.Category,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		Supplier:       req.Supplier,
		Location:       req.Location,
		OrganizationID: req.OrganizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	records := store.Records[domain.InventoryRecord](ctx, s.store, domain.CollectionInventory)
	records = append(records, record)
	store.PutRecords(ctx, s.store, domain.CollectionInventory, records)

	return record.View()
}

// Update 更新库存条目，未找到时静默无操作
func (s *InventoryService) Update(ctx context.Context, id string, req UpdateInventoryItemRequest) {
	records := store.Records[domain.InventoryRecord](ctx, s.store, domain.CollectionInventory)

	for i := range records {
		if records[i].ID != id {
			continue
		}
		if req.Name != nil {
			records[i].Name = *req.Name
		}
		if req.Category != nil {
			records[i].Category = *req.Category
		}
		if req.Quantity != nil {
			records[i].Quantity = *req.Quantity
		}
		if req.UnitPrice != nil {
			records[i].UnitPrice = *req.UnitPrice
		}
		if req.Supplier != nil {
			records[i].Supplier = *req.Supplier
		}
		if req.Location != nil {
			records[i].Location = *req.Location
		}
		records[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionInventory, records)
		return
	}
}

// Delete 删除库存条目
func (s *InventoryService) Delete(ctx context.Context, id string) {
	records := store.Records[domain.InventoryRecord](ctx, s.store, domain.CollectionInventory)

	filtered := records[:0]
	for i := range records {
		if records[i].ID != id {
			filtered = append(filtered, records[i])
		}
	}
	store.PutRecords(ctx, s.store, domain.CollectionInventory, filtered)
}
