package service

import (
	"context"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrganizationService 组织服务
type OrganizationService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewOrganizationService 创建组织服务实例
func NewOrganizationService(docStore *store.DocumentStore, logger *zap.Logger) *OrganizationService {
	return &OrganizationService{store: docStore, logger: logger}
}

// CreateOrganizationRequest 创建组织请求
type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// UpdateOrganizationRequest 更新组织请求（仅更新出现的字段）
type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
}

// GetAll 获取全部组织，按名称升序
func (s *OrganizationService) GetAll(ctx context.Context) []domain.Organization {
	records := store.Records[domain.OrganizationRecord](ctx, s.store, domain.CollectionOrganizations)

	orgs := make([]domain.Organization, 0, len(records))
	for i := range records {
		orgs = append(orgs, records[i].View())
	}
	sortByName(orgs, func(o domain.Organization) string { return o.Name })
	return orgs
}

// GetByID 按ID获取组织，未找到返回nil
func (s *OrganizationService) GetByID(ctx context.Context, id string) *domain.Organization {
	records := store.Records[domain.OrganizationRecord](ctx, s.store, domain.CollectionOrganizations)

	for i := range records {
		if records[i].ID == id {
			view := records[i].View()
			return &view
		}
	}
	return nil
}

// Create 创建组织
func (s *OrganizationService) Create(ctx context.Context, req CreateOrganizationRequest) domain.Organization {
	now := time.Now().UTC().Format(time.RFC3339)
	record := domain.OrganizationRecord{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	records := store.Records[domain.OrganizationRecord](ctx, s.store, domain.CollectionOrganizations)
	records = append(records, record)
	store.PutRecords(ctx, s.store, domain.CollectionOrganizations, records)

	return record.View()
}

// Update 更新组织，未找到时静默无操作
func (s *OrganizationService) Update(ctx context.Context, id string, req UpdateOrganizationRequest) {
	records := store.Records[domain.OrganizationRecord](ctx, s.store, domain.CollectionOrganizations)

	for i := range records {
		if records[i].ID != id {
			continue
		}
		if req.Name != nil {
			records[i].Name = *req.Name
		}
		if req.Description != nil {
			records[i].Description = *req.Description
		}
		if req.Logo != nil {
			records[i].Logo = *req.Logo
		}
		records[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionOrganizations, records)
		return
	}
}

// Delete 删除组织
func (s *OrganizationService) Delete(ctx context.Context, id string) {
	records := store.Records[domain.OrganizationRecord](ctx, s.store, domain.CollectionOrganizations)

	filtered := records[:0]
	for i := range records {
		if records[i].ID != id {
			filtered = append(filtered, records[i])
		}
	}
	store.PutRecords(ctx, s.store, domain.CollectionOrganizations, filtered)
}
