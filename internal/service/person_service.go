package service

import (
	"context"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PersonService 人员服务
type PersonService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewPersonService 创建人员服务实例
func NewPersonService(docStore *store.DocumentStore, logger *zap.Logger) *PersonService {
	return &PersonService{store: docStore, logger: logger}
}

// CreatePersonRequest 创建人员请求
type CreatePersonRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Position       string   `json:"position"`
	OrganizationID string   `json:"organizationId"`
	TeamID         string   `json:"teamId"`
	ManagerID      string   `json:"managerId"`
	Subordinates   []string `json:"subordinates"`
}

// UpdatePersonRequest 更新人员请求（仅更新出现的字段）
type UpdatePersonRequest struct {
	Name         *string              `json:"name"`
	Email        *string              `json:"email"`
	Position     *string              `json:"position"`
	TeamID       *string              `json:"teamId"`
	Status       *domain.PersonStatus `json:"status"`
	ManagerID    *string              `json:"managerId"`
	Subordinates *[]string            `json:"subordinates"`
	ExitDate     *string              `json:"exitDate"`
}

// GetAll 获取组织内全部人员，按名称升序
//
// 联查团队名称、分配给本人的资产与许可证
func (s *PersonService) GetAll(ctx context.Context, organizationID string) []domain.Person {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)
	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)
	assets := store.Records[domain.AssetRecord](ctx, s.store, domain.CollectionAssets)
	licenses := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)

	teamNames := make(map[string]string, len(teams))
	for i := range teams {
		teamNames[teams[i].ID] = teams[i].Name
	}

	now := time.Now().UTC()
	views := make([]domain.Person, 0, len(people))
	for i := range people {
		p := &people[i]
		if p.OrganizationID != organizationID {
			continue
		}

		var personAssets []domain.Asset
		for j := range assets {
			if assets[j].AssignedTo == p.ID {
				personAssets = append(personAssets, assets[j].View(p.Name))
			}
		}

		var personLicenses []domain.License
		for j := range licenses {
			if licenses[j].IsAssignedTo(p.ID) {
				personLicenses = append(personLicenses, licenses[j].View(now))
			}
		}

		views = append(views, personView(p, teamNames[p.TeamID], personLicenses, personAssets))
	}

	sortByName(views, func(p domain.Person) string { return p.Name })
	return views
}

// GetByID 按ID获取人员，未找到返回nil
func (s *PersonService) GetByID(ctx context.Context, id string) *domain.Person {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)
	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)

	for i := range people {
		if people[i].ID != id {
			continue
		}
		teamName := ""
		for j := range teams {
			if teams[j].ID == people[i].TeamID {
				teamName = teams[j].Name
				break
			}
		}
		view := personView(&people[i], teamName, nil, nil)
		return &view
	}
	return nil
}

// Create 创建人员，初始状态为active
func (s *PersonService) Create(ctx context.Context, req CreatePersonRequest) domain.Person {
	now := time.Now().UTC().Format(time.RFC3339)
	record := domain.PersonRecord{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		Position:       req.Position,
		Status:         domain.PersonStatusActive,
		OrganizationID: req.OrganizationID,
		TeamID:         req.TeamID,
		ManagerID:      req.ManagerID,
		Subordinates:   req.Subordinates,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)
	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)
	people = append(people, record)
	store.PutRecords(ctx, s.store, domain.CollectionPeople, people)

	teamName := ""
	for i := range teams {
		if teams[i].ID == req.TeamID {
			teamName = teams[i].Name
			break
		}
	}
	return personView(&record, teamName, nil, nil)
}

// Update 更新人员，未找到时静默无操作
func (s *PersonService) Update(ctx context.Context, id string, req UpdatePersonRequest) {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	for i := range people {
		if people[i].ID != id {
			continue
		}
		if req.Name != nil {
			people[i].Name = *req.Name
		}
		if req.Email != nil {
			people[i].Email = *req.Email
		}
		if req.Position != nil {
			people[i].Position = *req.Position
		}
		if req.TeamID != nil {
			people[i].TeamID = *req.TeamID
		}
		if req.Status != nil {
			people[i].Status = *req.Status
		}
		if req.ManagerID != nil {
			people[i].ManagerID = *req.ManagerID
		}
		if req.Subordinates != nil {
			people[i].Subordinates = *req.Subordinates
		}
		if req.ExitDate != nil {
			people[i].ExitDate = *req.ExitDate
		}
		people[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionPeople, people)
		return
	}
}

// Delete 删除人员
//
// 不级联处理资产与许可证；残留的assigned_to引用在联查时按未分配处理
func (s *PersonService) Delete(ctx context.Context, id string) {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	filtered := people[:0]
	for i := range people {
		if people[i].ID != id {
			filtered = append(filtered, people[i])
		}
	}
	store.PutRecords(ctx, s.store, domain.CollectionPeople, filtered)
}

// Hierarchy 构建组织架构树
func (s *PersonService) Hierarchy(ctx context.Context, organizationID string) ([]*domain.PersonNode, []string) {
	return BuildHierarchy(s.GetAll(ctx, organizationID))
}

// Costs 计算人员成本汇总，人员不存在返回nil
func (s *PersonService) Costs(ctx context.Context, personID string) *domain.PersonCosts {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	found := false
	for i := range people {
		if people[i].ID == personID {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	licenses := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)
	assets := store.Records[domain.AssetRecord](ctx, s.store, domain.CollectionAssets)

	costs := &domain.PersonCosts{}
	for i := range licenses {
		if !licenses[i].IsAssignedTo(personID) {
			continue
		}
		used := licenses[i].UsedCount()
		if used < 1 {
			used = 1
		}
		costs.LicenseCost += licenses[i].Cost / float64(used)
	}
	for i := range assets {
		if assets[i].AssignedTo == personID {
			costs.AssetsCost += assets[i].Value
			costs.AssetsCount++
		}
	}
	costs.TotalCost = costs.LicenseCost + costs.AssetsCost
	return costs
}

// personView 构建人员视图，nil切片规整为空切片
func personView(r *domain.PersonRecord, teamName string, licenses []domain.License, assets []domain.Asset) domain.Person {
	if licenses == nil {
		licenses = []domain.License{}
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	subordinates := r.Subordinates
	if subordinates == nil {
		subordinates = []string{}
	}
	return domain.Person{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Position:       r.Position,
		Status:         r.Status,
		OrganizationID: r.OrganizationID,
		TeamID:         r.TeamID,
		TeamName:       teamName,
		EntryDate:      r.CreatedAt,
		ExitDate:       r.ExitDate,
		ManagerID:      r.ManagerID,
		Subordinates:   subordinates,
		Licenses:       licenses,
		Assets:         assets,
	}
}
