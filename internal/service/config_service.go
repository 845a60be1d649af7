package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"go.uber.org/zap"
)

// ConfigService 配置服务：全量导出、导入、备份与清空
type ConfigService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewConfigService 创建配置服务实例
func NewConfigService(docStore *store.DocumentStore, logger *zap.Logger) *ConfigService {
	return &ConfigService{store: docStore, logger: logger}
}

// Export 导出全量数据
func (s *ConfigService) Export(ctx context.Context) domain.DatabaseExport {
	doc := s.store.Read(ctx)

	collection := func(name string) json.RawMessage {
		if raw, ok := doc[name]; ok && len(raw) > 0 {
			return raw
		}
		return json.RawMessage("[]")
	}

	return domain.DatabaseExport{
		Organizations: collection(domain.CollectionOrganizations),
		Teams:         collection(domain.CollectionTeams),
		People:        collection(domain.CollectionPeople),
		Assets:        collection(domain.CollectionAssets),
		Licenses:      collection(domain.CollectionLicenses),
		Inventory:     collection(domain.CollectionInventory),
		ExportDate:    time.Now().UTC().Format(time.RFC3339),
		Version:       domain.ExportVersion,
	}
}

// Import 导入全量数据
//
// 逐键校验六个集合都存在且为JSON数组，任一校验失败则整体拒绝、
// 不做部分应用；应用前先将当前文档快照到备份槽
func (s *ConfigService) Import(ctx context.Context, payload map[string]json.RawMessage) error {
	for _, name := range domain.Collections() {
		raw, ok := payload[name]
		if !ok {
			return fmt.Errorf("invalid format: %s must be an array", name)
		}
		if !isJSONArray(raw) {
			return fmt.Errorf("invalid format: %s must be an array", name)
		}
	}

	if err := s.store.Snapshot(ctx); err != nil {
		return fmt.Errorf("failed to back up current data: %w", err)
	}

	doc := domain.EmptyDocument()
	for _, name := range domain.Collections() {
		doc[name] = payload[name]
	}
	s.store.Write(ctx, doc)

	s.logger.Info("database import applied")
	return nil
}

// RestoreBackup 用备份槽覆盖当前数据
func (s *ConfigService) RestoreBackup(ctx context.Context) error {
	if err := s.store.Restore(ctx); err != nil {
		return err
	}
	s.logger.Info("database backup restored")
	return nil
}

// ClearAllData 清空当前数据（清空前自动快照到备份槽）
func (s *ConfigService) ClearAllData(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("database cleared")
	return nil
}

// isJSONArray 判断原始JSON是否为数组
func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return json.Valid(raw)
		default:
			return false
		}
	}
	return false
}
