package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TeamService 团队服务
type TeamService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewTeamService 创建团队服务实例
func NewTeamService(docStore *store.DocumentStore, logger *zap.Logger) *TeamService {
	return &TeamService{store: docStore, logger: logger}
}

// CreateTeamRequest 创建团队请求
type CreateTeamRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	OrganizationID string `json:"organizationId"`
	ManagerID      string `json:"managerId"`
}

// UpdateTeamRequest 更新团队请求（仅更新出现的字段）
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ManagerID   *string `json:"managerId"`
}

// GetAll 获取组织内全部团队，按创建时间降序
func (s *TeamService) GetAll(ctx context.Context, organizationID string) []domain.Team {
	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	views := make([]domain.Team, 0, len(teams))
	for i := range teams {
		if teams[i].OrganizationID != organizationID {
			continue
		}
		views = append(views, teams[i].View(s.activeMemberCount(people, teams[i].ID)))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return parseTimestamp(views[i].CreatedAt).After(parseTimestamp(views[j].CreatedAt))
	})
	return views
}

// GetByID 按ID获取团队，未找到返回nil
func (s *TeamService) GetByID(ctx context.Context, id string) *domain.Team {
	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	for i := range teams {
		if teams[i].ID == id {
			view := teams[i].View(s.activeMemberCount(people, id))
			return &view
		}
	}
	return nil
}

// Create 创建团队
func (s *TeamService) Create(ctx context.Context, req CreateTeamRequest) domain.Team {
	now := time.Now().UTC().Format(time.RFC3339)
	record := domain.TeamRecord{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		OrganizationID: req.OrganizationID,
		ManagerID:      req.ManagerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)
	teams = append(teams, record)
	store.PutRecords(ctx, s.store, domain.CollectionTeams, teams)

	return record.View(0)
}

// Update 更新团队，未找到时静默无操作
func (s *TeamService) Update(ctx context.Context, id string, req UpdateTeamRequest) {
	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)

	for i := range teams {
		if teams[i].ID != id {
			continue
		}
		if req.Name != nil {
			teams[i].Name = *req.Name
		}
		if req.Description != nil {
			teams[i].Description = *req.Description
		}
		if req.ManagerID != nil {
			teams[i].ManagerID = *req.ManagerID
		}
		teams[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		store.PutRecords(ctx, s.store, domain.CollectionTeams, teams)
		return
	}
}

// Delete 删除团队
//
// 删除前清除所有成员的team_id引用（不级联删除人员），
// 两个集合在同一次文档写入中落盘
func (s *TeamService) Delete(ctx context.Context, id string) {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)
	now := time.Now().UTC().Format(time.RFC3339)
	for i := range people {
		if people[i].TeamID == id {
			people[i].TeamID = ""
			people[i].UpdatedAt = now
		}
	}

	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)
	filtered := teams[:0]
	for i := range teams {
		if teams[i].ID != id {
			filtered = append(filtered, teams[i])
		}
	}

	s.store.SetCollections(ctx, map[string]json.RawMessage{
		domain.CollectionPeople: domain.EncodeRecords(people),
		domain.CollectionTeams:  domain.EncodeRecords(filtered),
	})
}

// activeMemberCount 统计团队中active状态的成员数
func (s *TeamService) activeMemberCount(people []domain.PersonRecord, teamID string) int {
	count := 0
	for i := range people {
		if people[i].TeamID == teamID && people[i].Status == domain.PersonStatusActive {
			count++
		}
	}
	return count
}

// AddPersonToTeam 将人员加入团队
func (s *TeamService) AddPersonToTeam(ctx context.Context, teamID, personID string) {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	for i := range people {
		if people[i].ID == personID {
			people[i].TeamID = teamID
			people[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			store.PutRecords(ctx, s.store, domain.CollectionPeople, people)
			return
		}
	}
}

// RemovePersonFromTeam 将人员移出所在团队
func (s *TeamService) RemovePersonFromTeam(ctx context.Context, personID string) {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)

	for i := range people {
		if people[i].ID == personID {
			people[i].TeamID = ""
			people[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			store.PutRecords(ctx, s.store, domain.CollectionPeople, people)
			return
		}
	}
}

// GetTeamMembers 获取团队active成员，按名称升序
func (s *TeamService) GetTeamMembers(ctx context.Context, teamID string) []domain.Person {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)
	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)

	teamNames := make(map[string]string, len(teams))
	for i := range teams {
		teamNames[teams[i].ID] = teams[i].Name
	}

	members := make([]domain.Person, 0)
	for i := range people {
		p := &people[i]
		if p.TeamID != teamID || p.Status != domain.PersonStatusActive {
			continue
		}
		members = append(members, personView(p, teamNames[p.TeamID], nil, nil))
	}
	sortByName(members, func(p domain.Person) string { return p.Name })
	return members
}
