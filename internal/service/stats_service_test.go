package service

import (
	"context"
	"testing"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	docStore := newTestStore()
	stats := NewStatsService(docStore, zap.NewNop())
	people := NewPersonService(docStore, zap.NewNop())
	teams := NewTeamService(docStore, zap.NewNop())
	licenses := NewLicenseService(docStore, zap.NewNop())
	assets := NewAssetService(docStore, zap.NewNop())

	teams.Create(ctx, CreateTeamRequest{Name: "Infra", OrganizationID: "o1"})

	alice := people.Create(ctx, CreatePersonRequest{Name: "Alice", OrganizationID: "o1"})
	people.Create(ctx, CreatePersonRequest{Name: "Bob", OrganizationID: "o1"})
	inactive := domain.PersonStatusInactive
	people.Update(ctx, alice.ID, UpdatePersonRequest{Status: &inactive})

	soon := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")
	licenses.Create(ctx, CreateLicenseRequest{Name: "Soon", ExpirationDate: soon, OrganizationID: "o1"})
	licenses.Create(ctx, CreateLicenseRequest{Name: "Later", ExpirationDate: "2099-01-01", OrganizationID: "o1"})

	assets.Create(ctx, CreateAssetRequest{Name: "Laptop", Type: domain.AssetTypeNotebook, Status: domain.AssetStatusAvailable, OrganizationID: "o1"})
	assets.Create(ctx, CreateAssetRequest{Name: "Old", Type: domain.AssetTypeOther, Status: domain.AssetStatusRetired, OrganizationID: "o1"})

	// 其他组织的数据不计入
	people.Create(ctx, CreatePersonRequest{Name: "Other", OrganizationID: "o2"})

	got := stats.GetDashboard(ctx, "o1")
	assert.Equal(t, 2, got.TotalPeople)
	assert.Equal(t, 1, got.ActivePeople)
	assert.Equal(t, 2, got.TotalLicenses)
	assert.Equal(t, 1, got.ExpiringLicenses)
	assert.Equal(t, 2, got.TotalAssets)
	assert.Equal(t, 1, got.AvailableAssets)
	assert.Equal(t, 1, got.TotalTeams)
}
