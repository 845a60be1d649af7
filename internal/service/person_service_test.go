package service

import (
	"context"
	"testing"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPersonGetAllJoinsAndSorts(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	teams := NewTeamService(docStore, zap.NewNop())
	people := NewPersonService(docStore, zap.NewNop())
	licenses := NewLicenseService(docStore, zap.NewNop())
	assets := NewAssetService(docStore, zap.NewNop())

	team := teams.Create(ctx, CreateTeamRequest{Name: "Infra", OrganizationID: "o1"})
	bob := people.Create(ctx, CreatePersonRequest{Name: "Bob", OrganizationID: "o1", TeamID: team.ID})
	people.Create(ctx, CreatePersonRequest{Name: "Alice", OrganizationID: "o1"})

	license := licenses.Create(ctx, CreateLicenseRequest{
		Name: "IDE", ExpirationDate: "2099-01-01", TotalQuantity: 1, OrganizationID: "o1",
	})
	licenses.AssignToUser(ctx, license.ID, bob.ID)

	asset := assets.Create(ctx, CreateAssetRequest{
		Name: "Laptop", Type: domain.AssetTypeNotebook, Value: 1500, OrganizationID: "o1",
	})
	assignee := bob.ID
	assets.Update(ctx, asset.ID, UpdateAssetRequest{AssignedTo: &assignee})

	got := people.GetAll(ctx, "o1")
	require.Len(t, got, 2)
	// 按名称升序
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)

	// 联查字段
	assert.Equal(t, "Infra", got[1].TeamName)
	require.Len(t, got[1].Licenses, 1)
	assert.Equal(t, "IDE", got[1].Licenses[0].Name)
	require.Len(t, got[1].Assets, 1)
	assert.Equal(t, "Laptop", got[1].Assets[0].Name)

	// 无关联时为空切片而不是null
	assert.NotNil(t, got[0].Licenses)
	assert.NotNil(t, got[0].Assets)
	assert.Empty(t, got[0].Licenses)
}

func TestPersonGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	people := NewPersonService(newTestStore(), zap.NewNop())

	assert.Nil(t, people.GetByID(ctx, "missing"))
}

func TestPersonCosts(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	people := NewPersonService(docStore, zap.NewNop())
	licenses := NewLicenseService(docStore, zap.NewNop())
	assets := NewAssetService(docStore, zap.NewNop())

	alice := people.Create(ctx, CreatePersonRequest{Name: "Alice", OrganizationID: "o1"})
	bob := people.Create(ctx, CreatePersonRequest{Name: "Bob", OrganizationID: "o1"})

	// 两人分摊的许可证：人均成本 100/2
	shared := licenses.Create(ctx, CreateLicenseRequest{
		Name: "IDE", ExpirationDate: "2099-01-01", TotalQuantity: 5, Cost: 100, OrganizationID: "o1",
	})
	licenses.AssignToUser(ctx, shared.ID, alice.ID)
	licenses.AssignToUser(ctx, shared.ID, bob.ID)

	asset := assets.Create(ctx, CreateAssetRequest{
		Name: "Laptop", Type: domain.AssetTypeNotebook, Value: 1500, OrganizationID: "o1",
	})
	assignee := alice.ID
	assets.Update(ctx, asset.ID, UpdateAssetRequest{AssignedTo: &assignee})

	costs := people.Costs(ctx, alice.ID)
	require.NotNil(t, costs)
	assert.InDelta(t, 50, costs.LicenseCost, 0.001)
	assert.InDelta(t, 1500, costs.AssetsCost, 0.001)
	assert.InDelta(t, 1550, costs.TotalCost, 0.001)
	assert.Equal(t, 1, costs.AssetsCount)

	assert.Nil(t, people.Costs(ctx, "missing"))
}

func TestPersonUpdatePartialFields(t *testing.T) {
	ctx := context.Background()
	people := NewPersonService(newTestStore(), zap.NewNop())

	p := people.Create(ctx, CreatePersonRequest{Name: "Alice", Email: "alice@acme.io", OrganizationID: "o1"})

	position := "Engineer"
	people.Update(ctx, p.ID, UpdatePersonRequest{Position: &position})

	got := people.GetByID(ctx, p.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Engineer", got.Position)
	// 未出现的字段保持不变
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@acme.io", got.Email)
}

func TestPersonHierarchyFromStore(t *testing.T) {
	ctx := context.Background()
	people := NewPersonService(newTestStore(), zap.NewNop())

	boss := people.Create(ctx, CreatePersonRequest{Name: "Boss", OrganizationID: "o1"})
	people.Create(ctx, CreatePersonRequest{Name: "Report", OrganizationID: "o1", ManagerID: boss.ID})

	roots, cycles := people.Hierarchy(ctx, "o1")
	assert.Empty(t, cycles)
	require.Len(t, roots, 1)
	assert.Equal(t, "Boss", roots[0].Name)
	require.Len(t, roots[0].Subordinates, 1)
	assert.Equal(t, "Report", roots[0].Subordinates[0].Name)
}
