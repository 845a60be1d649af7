package service

import (
	"context"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"go.uber.org/zap"
)

// StatsService 仪表盘统计服务
type StatsService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewStatsService 创建统计服务实例
func NewStatsService(docStore *store.DocumentStore, logger *zap.Logger) *StatsService {
	return &StatsService{store: docStore, logger: logger}
}

// GetDashboard 计算组织的仪表盘统计
func (s *StatsService) GetDashboard(ctx context.Context, organizationID string) domain.DashboardStats {
	people := store.Records[domain.PersonRecord](ctx, s.store, domain.CollectionPeople)
	licenses := store.Records[domain.LicenseRecord](ctx, s.store, domain.CollectionLicenses)
	assets := store.Records[domain.AssetRecord](ctx, s.store, domain.CollectionAssets)
	teams := store.Records[domain.TeamRecord](ctx, s.store, domain.CollectionTeams)

	now := time.Now().UTC()
	stats := domain.DashboardStats{}

	for i := range people {
		if people[i].OrganizationID != organizationID {
			continue
		}
		stats.TotalPeople++
		if people[i].Status == domain.PersonStatusActive {
			stats.ActivePeople++
		}
	}

	for i := range licenses {
		if licenses[i].OrganizationID != organizationID {
			continue
		}
		stats.TotalLicenses++
		if domain.LicenseStatusAt(licenses[i].ExpirationDate, now) == domain.LicenseStatusExpiringSoon {
			stats.ExpiringLicenses++
		}
	}

	for i := range assets {
		if assets[i].OrganizationID != organizationID {
			continue
		}
		stats.TotalAssets++
		if assets[i].Status == domain.AssetStatusAvailable {
			stats.AvailableAssets++
		}
	}

	for i := range teams {
		if teams[i].OrganizationID == organizationID {
			stats.TotalTeams++
		}
	}

	return stats
}
