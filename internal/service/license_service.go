package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LicenseService 许可证服务
type LicenseService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewLicenseService 创建许可证服务实例
func NewLicenseService(docStore *store.DocumentStore, logger *zap.Logger) *LicenseService {
	return &LicenseService{store: docStore, logger: logger}
}

// CreateLicenseRequest 创建许可证请求
//
// status与usedQuantity为派生字段，不接受写入
type CreateLicenseRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	ExpirationDate string  `json:"expirationDate"`
	TotalQuantity  int     `json:"totalQuantity"`
	Cost           float64 `json:"cost"`
	Vendor         string  `json:"vendor"`
	OrganizationID string  `json:"organizationId"`
}

// UpdateLicenseRequest 更新许可证请求（仅更新出现的字段）
type UpdateLicenseRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	ExpirationDate *string  `json:"expirationDate"`
	TotalQuantity  *int     `json:"totalQuantity"`
	Cost           *float64 `json:"cost"`
	Vendor         *string  `json:"vendor"`
}

// GetAll 获取组织内全部许可证，按过期日期降序
func (s *LicenseService) GetAll(ctx context.Context, organizationID string) []domain.License {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	now := time.Now().UTC()
	views := make([]domain.License, 0, len(records))
	for i := range records {
		if records[i].OrganizationID == organizationID {
			views = append(views, records[i].View(now))
		}
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].ExpirationDate > views[j].ExpirationDate
	})
	return views
}

// ListAll 获取全部组织的许可证（备份工作器的过期扫描用）
func (s *LicenseService) ListAll(ctx context.Context) []domain.License {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	now := time.Now().UTC()
	views := make([]domain.License, 0, len(records))
	for i := range records {
		views = append(views, records[i].View(now))
	}
	return views
}

// GetByID 按ID获取许可证，未找到返回nil
func (s *LicenseService) GetByID(ctx context.Context, id string) *domain.License {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	for i := range records {
		if records[i].ID == id {
			view := records[i].View(time.Now().UTC())
			return &view
		}
	}
	return nil
}

// Create 创建许可证
func (s *LicenseService) Create(ctx context.Context, req CreateLicenseRequest) domain.License {
	now := time.Now().UTC().Format(time.RFC3339)
	record := domain.LicenseRecord{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		ExpirationDate:  req.ExpirationDate,
		TotalQuantity:   req.TotalQuantity,
		UsedQuantity:    0,
		Cost:            req.Cost,
		Vendor:          req.Vendor,
		AssignedTo:      []string{},
		IndividualCodes: map[string]string{},
		OrganizationID:  req.OrganizationID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)
	records = append(records, record)
	store.PutRecords(ctx, s.store, domain.CollectionLicenses, records)

	return record.View(time.Now().UTC())
}

// Update 更新许可证，未找到时静默无操作
func (s *LicenseService) Update(ctx context.Context, id string, req UpdateLicenseRequest) {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

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
		if req.ExpirationDate != nil {
			records[i].ExpirationDate = *req.ExpirationDate
		}
		if req.TotalQuantity != nil {
			records[i].TotalQuantity = *req.TotalQuantity
		}
		if req.Cost != nil {
			records[i].Cost = *req.Cost
		}
		if req.Vendor != nil {
			records[i].Vendor = *req.Vendor
		}
		records[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionLicenses, records)
		return
	}
}

// Delete 删除许可证
func (s *LicenseService) Delete(ctx context.Context, id string) {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	filtered := records[:0]
	for i := range records {
		if records[i].ID != id {
			filtered = append(filtered, records[i])
		}
	}
	store.PutRecords(ctx, s.store, domain.CollectionLicenses, filtered)
}

// AssignToUser 将许可证分配给人员
//
// 已分配或已达容量上限时为幂等无操作；容量与成员检查基于
// 调用时刻的持久化状态（无过期读保护，最后写入者赢）
func (s *LicenseService) AssignToUser(ctx context.Context, licenseID, personID string) {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	for i := range records {
		if records[i].ID != licenseID {
			continue
		}
		if records[i].IsAssignedTo(personID) || records[i].UsedCount() >= records[i].TotalQuantity {
			return
		}
		records[i].AssignedTo = append(records[i].AssignedTo, personID)
		records[i].UsedQuantity = records[i].UsedCount()
		records[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionLicenses, records)
		return
	}
}

// UnassignFromUser 取消人员的许可证分配
//
// 同时删除该人员的个人激活码；人员未被分配时为无操作
func (s *LicenseService) UnassignFromUser(ctx context.Context, licenseID, personID string) {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	for i := range records {
		if records[i].ID != licenseID {
			continue
		}
		if !records[i].IsAssignedTo(personID) {
			return
		}

		assigned := records[i].AssignedTo[:0]
		for _, id := range records[i].AssignedTo {
			if id != personID {
				assigned = append(assigned, id)
			}
		}
		records[i].AssignedTo = assigned
		delete(records[i].IndividualCodes, personID)
		records[i].UsedQuantity = records[i].UsedCount()
		records[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionLicenses, records)
		return
	}
}

// UpdateLicenseCode 设置许可证通用激活码
func (s *LicenseService) UpdateLicenseCode(ctx context.Context, licenseID, code string) {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	for i := range records {
		if records[i].ID != licenseID {
			continue
		}
		records[i].LicenseCode = code
		records[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionLicenses, records)
		return
	}
}

// UpdateIndividualCode 设置人员的个人激活码
//
// 空白激活码删除该人员的条目而不是存入空串
func (s *LicenseService) UpdateIndividualCode(ctx context.Context, licenseID, personID, code string) {
	records := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	for i := range records {
		if records[i].ID != licenseID {
			continue
		}
		code = strings.TrimSpace(code)
		if code != "" {
			if records[i].IndividualCodes == nil {
				records[i].IndividualCodes = map[string]string{}
			}
			records[i].IndividualCodes[personID] = code
		} else {
			delete(records[i].IndividualCodes, personID)
		}
		records[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionLicenses, records)
		return
	}
}
