package service

import (
	"context"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssetService 资产服务
type AssetService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewAssetService 创建资产服务实例
func NewAssetService(docStore *store.DocumentStore, logger *zap.Logger) *AssetService {
	return &AssetService{store: docStore, logger: logger}
}

// CreateAssetRequest 创建资产请求
type CreateAssetRequest struct {
	Name           string                `json:"name"`
	Type           domain.AssetType      `json:"type"`
	SerialNumber   string                `json:"serialNumber"`
	Value          float64               `json:"value"`
	PurchaseDate   string                `json:"purchaseDate"`
	Status         domain.AssetStatus    `json:"status"`
	Condition      domain.AssetCondition `json:"condition"`
	AssignedTo     string                `json:"assignedTo"`
	Notes          string                `json:"notes"`
	OrganizationID string                `json:"organizationId"`
}

// UpdateAssetRequest 更新资产请求（仅更新出现的字段）
type UpdateAssetRequest struct {
	Name         *string                `json:"name"`
	Type         *domain.AssetType      `json:"type"`
	SerialNumber *string                `json:"serialNumber"`
	Value        *float64               `json:"value"`
	PurchaseDate *string                `json:"purchaseDate"`
	Status       *domain.AssetStatus    `json:"status"`
	Condition    *domain.AssetCondition `json:"condition"`
	AssignedTo   *string                `json:"assignedTo"`
	Notes        *string                `json:"notes"`
}

// GetAll 获取组织内全部资产，按名称升序
//
// 联查持有人名称；assigned_to指向不存在人员时按未分配处理
func (s *AssetService) GetAll(ctx context.Context, organizationID string) []domain.Asset {
	assets := store.Records[domain.AssetRecord](ctx, s.store, domain.CollectionAssets)
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	personNames := make(map[string]string, len(people))
	for i := range people {
		personNames[people[i].ID] = people[i].Name
	}

	views := make([]domain.Asset, 0, len(assets))
	for i := range assets {
		if assets[i].OrganizationID == organizationID {
			views = append(views, assetView(&assets[i], personNames))
		}
	}

	sortByName(views, func(a domain.Asset) string { return a.Name })
	return views
}

// GetByID 按ID获取资产，未找到返回nil
func (s *AssetService) GetByID(ctx context.Context, id string) *domain.Asset {
	assets := store.Records[domain.AssetRecord](ctx, s.store, domain.CollectionAssets)
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	personNames := make(map[string]string, len(people))
	for i := range people {
		personNames[people[i].ID] = people[i].Name
	}

	for i := range assets {
		if assets[i].ID == id {
			view := assetView(&assets[i], personNames)
			return &view
		}
	}
	return nil
}

// Create 创建资产
func (s *AssetService) Create(ctx context.Context, req CreateAssetRequest) domain.Asset {
	now := time.Now().UTC().Format(time.RFC3339)
	record := domain.AssetRecord{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Type:           req.Type,
		SerialNumber:   req.SerialNumber,
		Value:          req.Value,
		PurchaseDate:   req.PurchaseDate,
		Status:         req.Status,
		Condition:      req.Condition,
		AssignedTo:     req.AssignedTo,
		Notes:          req.Notes,
		OrganizationID: req.OrganizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	assets := store.Records[domain.AssetRecord](ctx, s.store, domain.CollectionAssets)
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)
	assets = append(assets, record)
	store.PutRecords(ctx, s.store, domain.CollectionAssets, assets)

	personNames := make(map[string]string, len(people))
	for i := range people {
		personNames[people[i].ID] = people[i].Name
	}
	return assetView(&record, personNames)
}

// Update 更新资产，未找到时静默无操作
func (s *AssetService) Update(ctx context.Context, id string, req UpdateAssetRequest) {
	assets := store.Records[domain.AssetRecord](ctx, s.store, domain.CollectionAssets)

	for i := range assets {
		if assets[i].ID != id {
			continue
		}
		if req.Name != nil {
			assets[i].Name = *req.Name
		}
		if req.Type != nil {
			assets[i].Type = *req.Type
		}
		if req.SerialNumber != nil {
			assets[i].SerialNumber = *req.SerialNumber
		}
		if req.Value != nil {
			assets[i].Value = *req.Value
		}
		if req.PurchaseDate != nil {
			assets[i].PurchaseDate = *req.PurchaseDate
		}
		if req.Status != nil {
			assets[i].Status = *req.Status
		}
		if req.Condition != nil {
			assets[i].Condition = *req.Condition
		}
		if req.AssignedTo != nil {
			assets[i].AssignedTo = *req.AssignedTo
		}
		if req.Notes != nil {
			assets[i].Notes = *req.Notes
		}
		assets[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionAssets, assets)
		return
	}
}

// Delete 删除资产
func (s *AssetService) Delete(ctx context.Context, id string) {
	assets := store.Records[domain.AssetRecord](ctx, s.store, domain.CollectionAssets)

	filtered := assets[:0]
	for i := range assets {
		if assets[i].ID != id {
			filtered = append(filtered, assets[i])
		}
	}
	store.PutRecords(ctx, s.store, domain.CollectionAssets, filtered)
}

// assetView 构建资产视图，悬垂的assigned_to引用按未分配处理
func assetView(r *domain.AssetRecord, personNames map[string]string) domain.Asset {
	name, ok := personNames[r.AssignedTo]
	if r.AssignedTo == "" || !ok {
		// 持有人不存在时整体视为未分配
		unassigned := *r
		unassigned.AssignedTo = ""
		return unassigned.View("")
	}
	return r.View(name)
}
