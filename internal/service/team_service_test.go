package service

import (
	"context"
	"testing"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTeamPeopleCountOnlyActiveMembers(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	teams := NewTeamService(docStore, zap.NewNop())
	people := NewPersonService(docStore, zap.NewNop())

	team := teams.Create(ctx, CreateTeamRequest{Name: "Infra", OrganizationID: "o1"})

	p1 := people.Create(ctx, CreatePersonRequest{Name: "Alice", OrganizationID: "o1", TeamID: team.ID})
	people.Create(ctx, CreatePersonRequest{Name: "Bob", OrganizationID: "o1", TeamID: team.ID})
	people.Create(ctx, CreatePersonRequest{Name: "Carol", OrganizationID: "o1"})

	inactive := domain.PersonStatusInactive
	people.Update(ctx, p1.ID, UpdatePersonRequest{Status: &inactive})

	got := teams.GetByID(ctx, team.ID)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.PeopleCount)
}

func TestTeamDeleteClearsMemberReferences(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	teams := NewTeamService(docStore, zap.NewNop())
	people := NewPersonService(docStore, zap.NewNop())

	team := teams.Create(ctx, CreateTeamRequest{Name: "Infra", OrganizationID: "o1"})
	member := people.Create(ctx, CreatePersonRequest{Name: "Alice", OrganizationID: "o1", TeamID: team.ID})

	teams.Delete(ctx, team.ID)

	assert.Nil(t, teams.GetByID(ctx, team.ID))

	// 成员未被级联删除，团队引用被清除
	got := people.GetByID(ctx, member.ID)
	require.NotNil(t, got)
	assert.Empty(t, got.TeamID)
}

func TestTeamMembership(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	teams := NewTeamService(docStore, zap.NewNop())
	people := NewPersonService(docStore, zap.NewNop())

	team := teams.Create(ctx, CreateTeamRequest{Name: "Infra", OrganizationID: "o1"})
	p := people.Create(ctx, CreatePersonRequest{Name: "Alice", OrganizationID: "o1"})

	teams.AddPersonToTeam(ctx, team.ID, p.ID)

	members := teams.GetTeamMembers(ctx, team.ID)
	require.Len(t, members, 1)
	assert.Equal(t, p.ID, members[0].ID)
	assert.Equal(t, "Infra", members[0].TeamName)

	teams.RemovePersonFromTeam(ctx, p.ID)
	assert.Empty(t, teams.GetTeamMembers(ctx, team.ID))
}

func TestTeamGetAllScopedToOrganization(t *testing.T) {
	ctx := context.Background()
	teams := NewTeamService(newTestStore(), zap.NewNop())

	teams.Create(ctx, CreateTeamRequest{Name: "A", OrganizationID: "o1"})
	teams.Create(ctx, CreateTeamRequest{Name: "B", OrganizationID: "o2"})

	got := teams.GetAll(ctx, "o1")
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}
